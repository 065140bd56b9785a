package reservation

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "innbook/database/repository/reservation"
	"innbook/models"
	"innbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the draft, prices the stay, and persists a PENDING
// reservation through the transactional create so the overlap check
// and the insert are atomic. The server-assigned id is the only
// reservation identity the client ever sees.
func (s *DefaultReservationService) Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	if draft.GuestID == "" {
		return nil, fmt.Errorf("guest id is required")
	}
	if len(draft.RoomIDs) == 0 {
		return nil, fmt.Errorf("at least one room is required")
	}
	if draft.NumberOfGuests <= 0 {
		return nil, fmt.Errorf("number of guests must be positive")
	}

	rng, err := models.ParseDateRange(draft.CheckIn, draft.CheckOut)
	if err != nil {
		return nil, err
	}

	rooms, err := s.RoomRepo.GetByIDs(draft.RoomIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requested rooms: %w", err)
	}
	if len(rooms) != len(draft.RoomIDs) {
		return nil, fmt.Errorf("one or more requested rooms do not exist")
	}
	capacity := 0
	for _, room := range rooms {
		capacity += room.Capacity
	}
	if draft.NumberOfGuests > capacity {
		return nil, fmt.Errorf("requested rooms sleep at most %d guests", capacity)
	}

	total, err := s.Availability.QuoteTotal(draft.RoomIDs, rng)
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		ID:              uuid.New().String(),
		GuestID:         draft.GuestID,
		RoomIDs:         draft.RoomIDs,
		CheckIn:         rng.CheckIn(),
		CheckOut:        rng.CheckOut(),
		NumberOfGuests:  draft.NumberOfGuests,
		SpecialRequests: draft.SpecialRequests,
		Status:          models.ReservationStatusPending,
		TotalPrice:      total,
	}

	if err := s.Repo.CreateIfAvailable(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrRoomsUnavailable) {
			// Normal race with another guest, not a fault.
			return nil, NewConflictError(err.Error())
		}
		return nil, err
	}

	if s.Holds != nil {
		if err := s.Holds.ScheduleExpiry(res.ID); err != nil {
			// The reservation stands; the hold just won't auto-release.
			utils.GetLogger().Warn("failed to schedule hold expiry",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("reservation created",
		zap.String("reservationID", res.ID),
		zap.String("guestID", res.GuestID),
		zap.Strings("roomIDs", res.RoomIDs),
		zap.String("checkIn", res.CheckIn),
		zap.String("checkOut", res.CheckOut))
	return res, nil
}

// transition moves a reservation between statuses, enforcing the
// legal lifecycle edges.
func (s *DefaultReservationService) transition(id, to string, allowedFrom ...string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("reservation %s not found", id)
	}

	allowed := false
	for _, from := range allowedFrom {
		if res.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move reservation %s from %s to %s", id, res.Status, to)
	}

	if err := s.Repo.UpdateStatus(id, to); err != nil {
		return nil, err
	}
	res.Status = to
	return res, nil
}

// Confirm marks a PENDING reservation as CONFIRMED (post-checkout).
func (s *DefaultReservationService) Confirm(id string) (*models.Reservation, error) {
	return s.transition(id, models.ReservationStatusConfirmed, models.ReservationStatusPending)
}

// Cancel releases a reservation that has not been checked in.
func (s *DefaultReservationService) Cancel(id string) (*models.Reservation, error) {
	return s.transition(id, models.ReservationStatusCancelled,
		models.ReservationStatusPending, models.ReservationStatusConfirmed)
}

// CheckIn marks a CONFIRMED reservation as CHECKED_IN.
func (s *DefaultReservationService) CheckIn(id string) (*models.Reservation, error) {
	return s.transition(id, models.ReservationStatusCheckedIn, models.ReservationStatusConfirmed)
}

// CheckOut marks a CHECKED_IN reservation as CHECKED_OUT.
func (s *DefaultReservationService) CheckOut(id string) (*models.Reservation, error) {
	return s.transition(id, models.ReservationStatusCheckedOut, models.ReservationStatusCheckedIn)
}

// ExpireIfPending releases a reservation whose hold window elapsed
// without confirmation. A no-op for any other status.
func (s *DefaultReservationService) ExpireIfPending(id string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if res == nil || res.Status != models.ReservationStatusPending {
		return nil
	}
	if err := s.Repo.UpdateStatus(id, models.ReservationStatusCancelled); err != nil {
		return err
	}
	utils.GetLogger().Info("pending reservation expired", zap.String("reservationID", id))
	return nil
}

// GetByID retrieves one reservation.
func (s *DefaultReservationService) GetByID(id string) (*models.Reservation, error) {
	return s.Repo.GetByID(id)
}

// GetByGuest retrieves a guest's reservations.
func (s *DefaultReservationService) GetByGuest(guestID string) ([]models.Reservation, error) {
	return s.Repo.GetByGuest(guestID)
}

// GetAll retrieves every reservation for the staff console.
func (s *DefaultReservationService) GetAll() ([]models.Reservation, error) {
	return s.Repo.GetAll()
}
