package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestErrorTaxonomy_Unwrap(t *testing.T) {
	t.Parallel()

	remote := &RemoteError{Op: "fetch matches", Status: http.StatusBadGateway, Message: "upstream"}
	if !errors.Is(remote, ErrDependencyUnavailable) {
		t.Fatalf("remote error should be a dependency failure")
	}
	if !strings.Contains(remote.Error(), "502 Bad Gateway") {
		t.Fatalf("unexpected remote error text: %s", remote.Error())
	}

	cause := errors.New("connection refused")
	network := &NetworkError{Op: "fetch matches", Err: cause}
	if !errors.Is(network, cause) || !errors.Is(network, ErrDependencyUnavailable) {
		t.Fatalf("network error should unwrap to cause and dependency sentinel")
	}

	missing := fmt.Errorf("load: %w", &MissingCredentialError{Op: "load schedule"})
	if !errors.Is(missing, ErrMissingCredential) {
		t.Fatalf("missing credential should match sentinel")
	}
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "missing credential", err: &MissingCredentialError{Op: "x"}, want: "Set your Blue Alliance API key before loading a schedule."},
		{name: "unauthorized", err: fmt.Errorf("wrap: %w", &RemoteError{Status: 401}), want: "The Blue Alliance rejected the API key. Check it and try again."},
		{name: "not found", err: &RemoteError{Status: 404}, want: "The Blue Alliance has no data for that event."},
		{name: "server error", err: &RemoteError{Status: 500}, want: "Failed to load schedule from The Blue Alliance (HTTP 500)."},
		{name: "network", err: &NetworkError{Op: "x", Err: errors.New("dial tcp")}, want: "Could not reach The Blue Alliance. Check your connection and try again."},
		{name: "breaker", err: fmt.Errorf("%w: circuit open", ErrDependencyUnavailable), want: "The Blue Alliance is temporarily unavailable. Try again shortly."},
		{name: "other", err: errors.New("boom"), want: "Failed to load schedule."},
	}

	for _, tc := range tests {
		if got := UserMessage(tc.err); got != tc.want {
			t.Fatalf("%s: UserMessage() = %q, want %q", tc.name, got, tc.want)
		}
	}
}
