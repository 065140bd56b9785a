package models

import (
	"fmt"
	"time"
)

// StayDateLayout is the wire format for all stay dates. Dates carry no
// time-of-day or timezone component, so equivalent ranges compare
// equal server-side.
const StayDateLayout = "2006-01-02"

// Night-count bounds for a single stay.
const (
	MinNights = 2
	MaxNights = 30
)

// Stay validation failures. These never cross the network; they are
// resolved where they are detected.
var (
	ErrPastDate      = fmt.Errorf("date is in the past")
	ErrEndNotAfter   = fmt.Errorf("check-out must be after check-in")
	ErrTooFewNights  = fmt.Errorf("stay must be at least %d nights", MinNights)
	ErrTooManyNights = fmt.Errorf("stay must be at most %d nights", MaxNights)
)

// DateRange is a committed check-in/check-out pair. It lives only for
// the duration of one booking interaction and is never persisted.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseStayDate parses a "YYYY-MM-DD" wire date as a UTC calendar day.
func ParseStayDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(StayDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stay date %q: %w", s, err)
	}
	return t, nil
}

// FormatStayDate renders a date in the wire format.
func FormatStayDate(t time.Time) string {
	return t.Format(StayDateLayout)
}

// TruncateToDay drops the time-of-day component, keeping the UTC day.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day count from a to b.
func DaysBetween(a, b time.Time) int {
	return int(TruncateToDay(b).Sub(TruncateToDay(a)).Hours() / 24)
}

// NewDateRange validates and commits a check-in/check-out pair against
// the night-count bounds.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)

	if !end.After(start) {
		return DateRange{}, ErrEndNotAfter
	}
	nights := DaysBetween(start, end)
	if nights < MinNights {
		return DateRange{}, ErrTooFewNights
	}
	if nights > MaxNights {
		return DateRange{}, ErrTooManyNights
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange validates a wire-format check-in/check-out pair.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	start, err := ParseStayDate(checkIn)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseStayDate(checkOut)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(start, end)
}

// Nights returns the whole-day count between check-in and check-out.
func (d DateRange) Nights() int {
	return DaysBetween(d.Start, d.End)
}

// CheckIn returns the wire-format check-in date.
func (d DateRange) CheckIn() string {
	return FormatStayDate(d.Start)
}

// CheckOut returns the wire-format check-out date.
func (d DateRange) CheckOut() string {
	return FormatStayDate(d.End)
}

// Zero reports whether the range has not been committed.
func (d DateRange) Zero() bool {
	return d.Start.IsZero() || d.End.IsZero()
}
