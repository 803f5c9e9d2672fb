package client

import "fmt"

// AuthExpiredMessage is shown to the admin when the backend rejects the token
const AuthExpiredMessage = "Authentication expired. Please login again."

// NetworkError means no response reached the client
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AuthExpiredError is returned for any 401; the held token is already cleared
type AuthExpiredError struct{}

func (e *AuthExpiredError) Error() string {
	return AuthExpiredMessage
}

// APIError is any other non-2xx response
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ProtocolError is a 2xx response whose body is not the expected JSON
type ProtocolError struct {
	Status int
	Err    error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("invalid response body (status %d): %v", e.Status, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
