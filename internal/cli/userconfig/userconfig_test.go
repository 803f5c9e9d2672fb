package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedEnvironment_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	url, err := GetSelectedEnvironment()
	require.NoError(t, err)
	assert.Empty(t, url)

	require.NoError(t, SetSelectedEnvironment("https://api.playera.lk/api"))

	url, err = GetSelectedEnvironment()
	require.NoError(t, err)
	assert.Equal(t, "https://api.playera.lk/api", url)

	_, err = os.Stat(filepath.Join(home, ".config", "playera", "config.json"))
	assert.NoError(t, err)
}

func TestLoad_CorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0600))

	_, err = Load()
	assert.ErrorContains(t, err, "failed to parse user config file")
}
