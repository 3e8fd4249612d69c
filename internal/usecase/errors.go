package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrMissingCredential     = errors.New("alliance data api key is not set")
)

// NetworkError is a transport failure talking to the alliance-data service:
// DNS, refused connection, timeout, truncated body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrDependencyUnavailable, e.Err}
}

// RemoteError is a non-success (or unreadable) response from the service.
type RemoteError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	status := strings.TrimSpace(fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)))
	if e.Message == "" {
		return fmt.Sprintf("%s: remote error: %s", e.Op, status)
	}
	return fmt.Sprintf("%s: remote error: %s: %s", e.Op, status, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrDependencyUnavailable
}

// MissingCredentialError means the operation needs an API key and none is stored.
type MissingCredentialError struct {
	Op string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrMissingCredential)
}

func (e *MissingCredentialError) Unwrap() error {
	return ErrMissingCredential
}

// StorageCorruptionError describes persisted bytes that failed to decode.
// It is logged and the value treated as absent; callers never receive it.
type StorageCorruptionError struct {
	Key string
	Err error
}

func (e *StorageCorruptionError) Error() string {
	return fmt.Sprintf("stored value %q is corrupt: %v", e.Key, e.Err)
}

func (e *StorageCorruptionError) Unwrap() error {
	return e.Err
}

// UserMessage turns a fetch-layer error into the single line shown to a scout.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var (
		missing *MissingCredentialError
		remote  *RemoteError
		network *NetworkError
	)
	switch {
	case errors.As(err, &missing), errors.Is(err, ErrMissingCredential):
		return "Set your Blue Alliance API key before loading a schedule."
	case errors.As(err, &remote):
		switch remote.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "The Blue Alliance rejected the API key. Check it and try again."
		case http.StatusNotFound:
			return "The Blue Alliance has no data for that event."
		}
		if remote.Status > 0 {
			return fmt.Sprintf("Failed to load schedule from The Blue Alliance (HTTP %d).", remote.Status)
		}
		return "Failed to load schedule from The Blue Alliance."
	case errors.As(err, &network):
		return "Could not reach The Blue Alliance. Check your connection and try again."
	case errors.Is(err, ErrDependencyUnavailable):
		return "The Blue Alliance is temporarily unavailable. Try again shortly."
	case errors.Is(err, ErrInvalidInput):
		return "Enter a valid event key, for example 2024casj."
	default:
		return "Failed to load schedule."
	}
}
