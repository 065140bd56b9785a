package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := ParseStayDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseStayDate(t *testing.T) {
	d, err := ParseStayDate("2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseStayDate("10/03/2025")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 2, DaysBetween(date("2025-03-10"), date("2025-03-12")))
	assert.Equal(t, 0, DaysBetween(date("2025-03-10"), date("2025-03-10")))
	assert.Equal(t, -1, DaysBetween(date("2025-03-10"), date("2025-03-09")))
}

func TestNewDateRange(t *testing.T) {
	rng, err := NewDateRange(date("2025-03-10"), date("2025-03-12"))
	assert.NoError(t, err)
	assert.Equal(t, 2, rng.Nights())
	assert.Equal(t, "2025-03-10", rng.CheckIn())
	assert.Equal(t, "2025-03-12", rng.CheckOut())

	_, err = NewDateRange(date("2025-03-10"), date("2025-03-11"))
	assert.ErrorIs(t, err, ErrTooFewNights)

	_, err = NewDateRange(date("2025-03-10"), date("2025-04-15"))
	assert.ErrorIs(t, err, ErrTooManyNights)

	_, err = NewDateRange(date("2025-03-10"), date("2025-03-10"))
	assert.ErrorIs(t, err, ErrEndNotAfter)

	_, err = NewDateRange(date("2025-03-12"), date("2025-03-10"))
	assert.ErrorIs(t, err, ErrEndNotAfter)
}

func TestNewDateRangeBounds(t *testing.T) {
	// Exactly MinNights and MaxNights are both valid.
	rng, err := NewDateRange(date("2025-03-10"), date("2025-03-12"))
	assert.NoError(t, err)
	assert.Equal(t, MinNights, rng.Nights())

	rng, err = NewDateRange(date("2025-03-10"), date("2025-04-09"))
	assert.NoError(t, err)
	assert.Equal(t, MaxNights, rng.Nights())
}

func TestParseDateRange(t *testing.T) {
	rng, err := ParseDateRange("2025-03-10", "2025-03-12")
	assert.NoError(t, err)
	assert.Equal(t, 2, rng.Nights())

	_, err = ParseDateRange("2025-03-10", "bogus")
	assert.Error(t, err)
}
