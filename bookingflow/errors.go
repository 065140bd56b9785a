package bookingflow

import "fmt"

// FieldError is a client-detectable validation failure on a submit
// field. Never sent to the network; shown inline.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NetworkError means a request failed to complete. Shown as a generic
// connectivity message.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError carries a backend rejection. Message is the backend's
// own text when it provided one, surfaced verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.StatusCode)
}

// ErrSuperseded means a newer availability query was issued before
// this one's response arrived; the stale result must be discarded.
var ErrSuperseded = fmt.Errorf("availability result superseded by a newer query")
