package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	service = "playera-admin-cli"

	// TokenKey holds the bearer token of the signed-in admin
	TokenKey = "adminAuthToken"
	// ProfileKey holds a JSON snapshot of the signed-in admin profile
	ProfileKey = "currentAdmin"
)

// ErrNotFound is returned by Store.Get when nothing is stored under a key
var ErrNotFound = errors.New("not found")

// Store defines durable key/value storage for session state.
// This allows us to swap the keyring for memory in tests
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// KeyringStore persists values in the OS keychain/credential manager,
// scoped to a single API base URL so several backends can be used side by side
type KeyringStore struct {
	scope string
}

// NewKeyringStore creates a keychain-backed store for the given API base URL
func NewKeyringStore(baseURL string) *KeyringStore {
	return &KeyringStore{scope: strings.TrimRight(baseURL, "/")}
}

// account returns a unique keychain account name for a key
func (k *KeyringStore) account(key string) string {
	return fmt.Sprintf("%s-%s", key, k.scope)
}

func (k *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(service, k.account(key))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, nil
}

func (k *KeyringStore) Set(key, value string) error {
	if err := keyring.Set(service, k.account(key), value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (k *KeyringStore) Delete(key string) error {
	if err := keyring.Delete(service, k.account(key)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil // Already deleted
		}
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
