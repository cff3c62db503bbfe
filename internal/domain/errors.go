package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrAPIKeyRequired = errors.New("api key is required")

// NotFoundError reports a resource type alias missing from the table.
type NotFoundError struct {
	Token     string
	Supported []string
}

func (e *NotFoundError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported resource type %q", e.Token)
	}
	return fmt.Sprintf("unsupported resource type %q. Supported types: %s", e.Token, strings.Join(e.Supported, ", "))
}

// AuthError reports a missing credential (StatusCode 0) or one rejected by
// the remote service.
type AuthError struct {
	Op         string
	StatusCode int
}

func (e *AuthError) Error() string {
	if e.StatusCode == 0 {
		return "api key not found: run 'kubectl komodor auth <api-key>' first"
	}
	return fmt.Sprintf("%s: api key rejected (%d %s): check the key or run 'kubectl komodor auth <api-key>'",
		e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// RemoteError reports a non-2xx response or an unusable response body.
type RemoteError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: remote returned %d", e.Op, e.StatusCode)
	if e.Status != "" {
		msg = fmt.Sprintf("%s: remote returned %s", e.Op, e.Status)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// TransportError reports a request that never produced a response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
