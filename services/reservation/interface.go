package reservation

import (
	"context"

	reservationRepo "innbook/database/repository/reservation"
	roomRepo "innbook/database/repository/room"
	"innbook/models"
	"innbook/services/availability"
)

// ReservationService owns the reservation lifecycle.
type ReservationService interface {
	Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
	Confirm(id string) (*models.Reservation, error)
	Cancel(id string) (*models.Reservation, error)
	CheckIn(id string) (*models.Reservation, error)
	CheckOut(id string) (*models.Reservation, error)
	ExpireIfPending(id string) error
	GetByID(id string) (*models.Reservation, error)
	GetByGuest(guestID string) ([]models.Reservation, error)
	GetAll() ([]models.Reservation, error)
}

// HoldScheduler schedules release of unconfirmed PENDING reservations.
type HoldScheduler interface {
	ScheduleExpiry(reservationID string) error
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo         reservationRepo.ReservationRepository
	RoomRepo     roomRepo.RoomRepository
	Availability availability.AvailabilityService
	Holds        HoldScheduler
}
