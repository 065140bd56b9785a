package bookingflow

import (
	"context"
	"fmt"
	"time"

	"innbook/models"
	"innbook/utils"

	"go.uber.org/zap"
)

// BookingFlowController holds the state of one booking interaction on
// the public site: the date selection, the room list fetched for it,
// the chosen room, and the submit handoff. One controller per active
// flow; discard it when the guest leaves the page.
type BookingFlowController struct {
	auth      AuthSession
	selector  *DateRangeSelector
	checker   *AvailabilityChecker
	submitter *BookingSubmitter
	logger    *zap.Logger

	rooms           []models.RoomProjection
	degraded        bool
	selectedRoomID  string
	numberOfGuests  int
	specialRequests string

	submitting            bool
	checkoutReservationID string
}

// NewBookingFlowController wires a flow over the given API with the
// guest identity injected explicitly.
func NewBookingFlowController(api BookingAPI, auth AuthSession) *BookingFlowController {
	checker := NewAvailabilityChecker(api)
	return &BookingFlowController{
		auth:           auth,
		selector:       &DateRangeSelector{},
		checker:        checker,
		submitter:      NewBookingSubmitter(api, checker),
		logger:         utils.GetLogger(),
		numberOfGuests: 1,
	}
}

// Selector exposes the date picker state for the UI layer.
func (c *BookingFlowController) Selector() *DateRangeSelector {
	return c.selector
}

// OnStartDateSelected records a new check-in date. The room list for
// any previous range is invalidated along with the cleared end date.
func (c *BookingFlowController) OnStartDateSelected(date time.Time) error {
	if err := c.selector.SelectStart(date); err != nil {
		return err
	}
	c.rooms = nil
	c.degraded = false
	return nil
}

// OnEndDateSelected commits the range and triggers exactly one
// availability query for it. Any in-flight result for an older range
// is discarded by the checker's supersession guard.
func (c *BookingFlowController) OnEndDateSelected(ctx context.Context, date time.Time) error {
	rng, err := c.selector.SelectEnd(date)
	if err != nil {
		return err
	}
	return c.refreshRooms(ctx, rng)
}

func (c *BookingFlowController) refreshRooms(ctx context.Context, rng models.DateRange) error {
	rooms, degraded, err := c.checker.ListFree(ctx, rng)
	if err == ErrSuperseded {
		// A newer selection already owns the room list.
		return nil
	}
	if err != nil {
		return err
	}
	c.rooms = rooms
	c.degraded = degraded
	if degraded {
		c.logger.Warn("showing unfiltered room list after availability error",
			zap.String("checkIn", rng.CheckIn()), zap.String("checkOut", rng.CheckOut()))
	}
	return nil
}

// OnRoomSelected records the guest's room choice.
func (c *BookingFlowController) OnRoomSelected(roomID string) error {
	for _, room := range c.rooms {
		if room.ID == roomID {
			c.selectedRoomID = roomID
			return nil
		}
	}
	return fmt.Errorf("room %s is not among the offered rooms", roomID)
}

// SetNumberOfGuests records the party size.
func (c *BookingFlowController) SetNumberOfGuests(n int) {
	c.numberOfGuests = n
}

// SetSpecialRequests records free-text requests for the stay.
func (c *BookingFlowController) SetSpecialRequests(text string) {
	c.specialRequests = text
}

// Quote computes the display total for the current selection:
// nights × pricePerNight. The backend recomputes the authoritative
// total at create time.
func (c *BookingFlowController) Quote() (float64, bool) {
	rng, ok := c.selector.Range()
	if !ok || c.selectedRoomID == "" {
		return 0, false
	}
	for _, room := range c.rooms {
		if room.ID == c.selectedRoomID {
			return float64(rng.Nights()) * room.PricePerNight, true
		}
	}
	return 0, false
}

// Submit runs one submit attempt. While a create is outstanding the
// submit control is disabled, so at most one attempt is in flight.
// A Conflict outcome refreshes the room list so the UI reflects the
// new reality.
func (c *BookingFlowController) Submit(ctx context.Context) SubmitOutcome {
	if c.submitting {
		return SubmitOutcome{State: StateInvalid, Message: "a submission is already in progress"}
	}
	rng, _ := c.selector.Range()
	req := SubmitRequest{
		Range:           rng,
		RoomID:          c.selectedRoomID,
		NumberOfGuests:  c.numberOfGuests,
		SpecialRequests: c.specialRequests,
	}

	c.submitting = true
	outcome := c.submitter.Submit(ctx, c.auth, req)
	c.submitting = false

	switch outcome.State {
	case StateSubmitted:
		c.checkoutReservationID = outcome.Reservation.ID
	case StateConflict:
		if !rng.Zero() {
			if err := c.refreshRooms(ctx, rng); err != nil {
				c.logger.Warn("room list refresh after conflict failed", zap.Error(err))
			}
		}
	}
	return outcome
}

// Rooms returns the room list for the committed range and whether it
// is a degraded (unfiltered) list.
func (c *BookingFlowController) Rooms() ([]models.RoomProjection, bool) {
	return c.rooms, c.degraded
}

// CheckoutReservationID returns the reservation id carried into the
// checkout step after a successful submit.
func (c *BookingFlowController) CheckoutReservationID() (string, bool) {
	return c.checkoutReservationID, c.checkoutReservationID != ""
}
