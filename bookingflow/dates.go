package bookingflow

import (
	"time"

	"innbook/models"
)

// DateRangeSelector collects a check-in/check-out pair under the
// night-count bounds. Pure local state; it never talks to the backend.
type DateRangeSelector struct {
	// Now supplies the clock; defaults to time.Now. Injectable for tests.
	Now func() time.Time

	start     time.Time
	end       time.Time
	committed models.DateRange
}

func (s *DateRangeSelector) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return models.TruncateToDay(now())
}

// SelectStart picks the check-in date. Past dates are rejected. Any
// previously chosen end date is cleared so a stale pairing can never
// survive a new start.
func (s *DateRangeSelector) SelectStart(date time.Time) error {
	date = models.TruncateToDay(date)
	if date.Before(s.today()) {
		return models.ErrPastDate
	}
	s.start = date
	s.end = time.Time{}
	s.committed = models.DateRange{}
	return nil
}

// SelectEnd picks the check-out date and commits the range when the
// night count is within bounds. Validation mirrors EndWindow exactly:
// both derive from MinNights/MaxNights, so a date the picker offers is
// never rejected here.
func (s *DateRangeSelector) SelectEnd(date time.Time) (models.DateRange, error) {
	if s.start.IsZero() {
		return models.DateRange{}, models.ErrEndNotAfter
	}
	rng, err := models.NewDateRange(s.start, date)
	if err != nil {
		return models.DateRange{}, err
	}
	s.end = rng.End
	s.committed = rng
	return rng, nil
}

// EndWindow returns the selectable check-out window
// [start+MinNights, start+MaxNights]. ok is false until a start date
// is chosen. The picker disables everything outside the window.
func (s *DateRangeSelector) EndWindow() (earliest, latest time.Time, ok bool) {
	if s.start.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return s.start.AddDate(0, 0, models.MinNights), s.start.AddDate(0, 0, models.MaxNights), true
}

// SelectableEnd reports whether the picker should offer the date as a
// check-out choice.
func (s *DateRangeSelector) SelectableEnd(date time.Time) bool {
	earliest, latest, ok := s.EndWindow()
	if !ok {
		return false
	}
	date = models.TruncateToDay(date)
	return !date.Before(earliest) && !date.After(latest)
}

// Range returns the committed range, if any.
func (s *DateRangeSelector) Range() (models.DateRange, bool) {
	if s.committed.Zero() {
		return models.DateRange{}, false
	}
	return s.committed, true
}

// Start returns the currently chosen check-in date, if any.
func (s *DateRangeSelector) Start() (time.Time, bool) {
	return s.start, !s.start.IsZero()
}
