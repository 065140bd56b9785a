package reservation

import "fmt"

// ConflictError signals that the requested rooms were taken between
// the client's availability check and the create call. Expected
// business outcome, not a server fault.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "reservationConflict",
		Message: msg,
	}
}
