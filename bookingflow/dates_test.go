package bookingflow

import (
	"testing"
	"time"

	"innbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := models.ParseStayDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func newSelector(today string) *DateRangeSelector {
	return &DateRangeSelector{
		Now: func() time.Time { return date(today) },
	}
}

func TestSelectStartRejectsPastDates(t *testing.T) {
	s := newSelector("2025-03-01")

	assert.ErrorIs(t, s.SelectStart(date("2025-02-28")), models.ErrPastDate)
	assert.NoError(t, s.SelectStart(date("2025-03-01")))
	assert.NoError(t, s.SelectStart(date("2025-03-10")))
}

func TestSelectEndNightBounds(t *testing.T) {
	s := newSelector("2025-03-01")
	require.NoError(t, s.SelectStart(date("2025-03-10")))

	_, err := s.SelectEnd(date("2025-03-11")) // 1 night
	assert.ErrorIs(t, err, models.ErrTooFewNights)

	_, err = s.SelectEnd(date("2025-04-15")) // 36 nights
	assert.ErrorIs(t, err, models.ErrTooManyNights)

	rng, err := s.SelectEnd(date("2025-03-12")) // 2 nights
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", rng.CheckIn())
	assert.Equal(t, "2025-03-12", rng.CheckOut())
	assert.Equal(t, 2, rng.Nights())
}

func TestSelectEndRequiresStart(t *testing.T) {
	s := newSelector("2025-03-01")
	_, err := s.SelectEnd(date("2025-03-12"))
	assert.Error(t, err)
}

func TestNewStartClearsEnd(t *testing.T) {
	s := newSelector("2025-03-01")
	require.NoError(t, s.SelectStart(date("2025-03-10")))
	_, err := s.SelectEnd(date("2025-03-14"))
	require.NoError(t, err)

	_, ok := s.Range()
	assert.True(t, ok)

	// A new start must never keep the old end paired with it.
	require.NoError(t, s.SelectStart(date("2025-03-20")))
	_, ok = s.Range()
	assert.False(t, ok)
}

func TestEndWindowMatchesValidation(t *testing.T) {
	s := newSelector("2025-03-01")

	_, _, ok := s.EndWindow()
	assert.False(t, ok)

	require.NoError(t, s.SelectStart(date("2025-03-10")))
	earliest, latest, ok := s.EndWindow()
	require.True(t, ok)
	assert.Equal(t, date("2025-03-12"), earliest)
	assert.Equal(t, date("2025-04-09"), latest)

	// Every date the picker offers must validate, and every date it
	// withholds must be rejected: the two paths share the constants.
	for d := date("2025-03-11"); !d.After(date("2025-04-10")); d = d.AddDate(0, 0, 1) {
		sel := newSelector("2025-03-01")
		require.NoError(t, sel.SelectStart(date("2025-03-10")))
		_, err := sel.SelectEnd(d)
		if sel.SelectableEnd(d) {
			assert.NoError(t, err, "offered date %s must validate", models.FormatStayDate(d))
		} else {
			assert.Error(t, err, "withheld date %s must be rejected", models.FormatStayDate(d))
		}
	}
}
