package bookingflow

import (
	"context"
	"errors"

	"innbook/models"
	"innbook/utils"

	"go.uber.org/zap"
)

// SubmitState is the terminal state of one submit attempt. Submitted
// is not reentrant: another attempt re-runs the whole sequence and
// produces a new reservation.
type SubmitState string

const (
	StateRequiresLogin SubmitState = "REQUIRES_LOGIN"
	StateInvalid       SubmitState = "INVALID"
	StateConflict      SubmitState = "CONFLICT"
	StateFailed        SubmitState = "FAILED"
	StateSubmitted     SubmitState = "SUBMITTED"
)

// AuthSession is the authenticated identity injected into the flow at
// construction. The flow never reads session credentials itself.
type AuthSession struct {
	Authenticated bool
	GuestID       string
	Token         string
}

// SubmitOutcome describes how a submit attempt terminated.
type SubmitOutcome struct {
	State       SubmitState
	Reservation *models.Reservation
	FieldErrors []FieldError
	Message     string
}

// SubmitRequest carries everything a submit attempt needs.
type SubmitRequest struct {
	Range           models.DateRange
	RoomID          string
	NumberOfGuests  int
	SpecialRequests string
}

// BookingSubmitter runs the linear submit sequence:
// auth check, field validation, final availability re-check, create.
type BookingSubmitter struct {
	api     BookingAPI
	checker *AvailabilityChecker
	logger  *zap.Logger
}

// NewBookingSubmitter creates a submitter sharing the flow's checker.
func NewBookingSubmitter(api BookingAPI, checker *AvailabilityChecker) *BookingSubmitter {
	return &BookingSubmitter{
		api:     api,
		checker: checker,
		logger:  utils.GetLogger(),
	}
}

// Submit runs one attempt through the full sequence. The availability
// re-check always happens immediately before create, against exactly
// the chosen room and range; an earlier check is never trusted.
// Failures are retried only by an explicit new Submit call.
func (b *BookingSubmitter) Submit(ctx context.Context, auth AuthSession, req SubmitRequest) SubmitOutcome {
	if !auth.Authenticated || auth.GuestID == "" {
		return SubmitOutcome{State: StateRequiresLogin}
	}

	var fieldErrs []FieldError
	if req.Range.Zero() {
		fieldErrs = append(fieldErrs, FieldError{Field: "dates", Message: "select check-in and check-out dates"})
	}
	if req.RoomID == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "room", Message: "select a room"})
	}
	if req.NumberOfGuests <= 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "guests", Message: "enter the number of guests"})
	}
	if len(fieldErrs) > 0 {
		return SubmitOutcome{State: StateInvalid, FieldErrors: fieldErrs}
	}

	result, err := b.checker.Query(ctx, req.Range, req.RoomID)
	if err != nil {
		return SubmitOutcome{State: StateFailed, Message: failureMessage(err)}
	}
	if !result.AllAvailable {
		// Expected race with other guests, not an error.
		b.logger.Info("room no longer available at submit",
			zap.String("roomID", req.RoomID),
			zap.String("checkIn", req.Range.CheckIn()),
			zap.String("checkOut", req.Range.CheckOut()))
		return SubmitOutcome{State: StateConflict, Message: "room no longer available"}
	}

	draft := models.ReservationDraft{
		GuestID:         auth.GuestID,
		RoomIDs:         []string{req.RoomID},
		CheckIn:         req.Range.CheckIn(),
		CheckOut:        req.Range.CheckOut(),
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationStatusPending,
	}
	reservation, err := b.api.CreateReservation(ctx, draft)
	if err != nil {
		b.logger.Error("reservation create failed", zap.Error(err))
		return SubmitOutcome{State: StateFailed, Message: failureMessage(err)}
	}

	return SubmitOutcome{State: StateSubmitted, Reservation: reservation}
}

// failureMessage surfaces backend-provided text verbatim when present,
// else a generic message per error kind.
func failureMessage(err error) string {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		if srvErr.Message != "" {
			return srvErr.Message
		}
		return "something went wrong, please try again later"
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "connection problem, please check your network and try again"
	}
	return "something went wrong, please try again later"
}
