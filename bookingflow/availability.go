package bookingflow

import (
	"context"
	"sync/atomic"

	"innbook/models"
)

// AvailabilityChecker queries the backend for which rooms are free.
// Safe to call repeatedly; each call re-fetches. Responses belonging
// to a superseded query are discarded so the latest request always
// wins, even if an older response arrives later.
type AvailabilityChecker struct {
	api BookingAPI
	seq atomic.Uint64
}

// NewAvailabilityChecker creates a checker over the given API.
func NewAvailabilityChecker(api BookingAPI) *AvailabilityChecker {
	return &AvailabilityChecker{api: api}
}

// Query re-checks availability of the specific rooms for the range.
// No fallback here: the answer gates reservation creation, so an
// error must surface as an error rather than degrade.
func (c *AvailabilityChecker) Query(ctx context.Context, rng models.DateRange, roomIDs ...string) (*models.AvailabilityResult, error) {
	token := c.seq.Add(1)

	result, err := c.api.CheckAvailability(ctx, roomIDs, rng.CheckIn(), rng.CheckOut())
	if err != nil {
		return nil, err
	}
	if c.seq.Load() != token {
		return nil, ErrSuperseded
	}
	return result, nil
}

// ListFree fetches the rooms free for the range. On network or
// backend error it degrades to the unfiltered full room list so the
// UI can keep showing choices; degraded is true in that case and the
// pre-submit check remains the authoritative gate.
func (c *AvailabilityChecker) ListFree(ctx context.Context, rng models.DateRange) (rooms []models.RoomProjection, degraded bool, err error) {
	token := c.seq.Add(1)

	rooms, err = c.api.AvailableRooms(ctx, rng.CheckIn(), rng.CheckOut())
	if err != nil {
		rooms, err = c.api.AllRooms(ctx)
		if err != nil {
			return nil, false, err
		}
		degraded = true
	}

	if c.seq.Load() != token {
		return nil, degraded, ErrSuperseded
	}
	return rooms, degraded, nil
}
