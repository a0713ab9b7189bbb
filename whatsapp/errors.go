package whatsapp

import (
	"errors"
	"fmt"
)

// ErrMisconfigured is returned before any network I/O when the access token
// or phone number ID is missing.
var ErrMisconfigured = errors.New("whatsapp: access token or phone number ID not configured")

// RemoteRejectedError reports a non-success status from the Cloud API.
type RemoteRejectedError struct {
	StatusCode int
	Body       string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("whatsapp: send rejected with status %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a failure before an HTTP response was received,
// such as a timeout or connection error.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "whatsapp: transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
