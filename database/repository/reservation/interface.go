// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"innbook/models"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(res *models.Reservation) error
	Update(res *models.Reservation) error
	UpdateStatus(id, status string) error
	GetByID(id string) (*models.Reservation, error)
	GetByGuest(guestID string) ([]models.Reservation, error)
	GetAll() ([]models.Reservation, error)

	// FindOverlapping returns active reservations touching any of the
	// given rooms within [checkIn, checkOut). Dates are "YYYY-MM-DD".
	FindOverlapping(roomIDs []string, checkIn, checkOut string) ([]models.Reservation, error)

	// BookedRoomIDs returns the set of room ids with an active
	// reservation overlapping [checkIn, checkOut).
	BookedRoomIDs(checkIn, checkOut string) ([]string, error)

	// CreateIfAvailable inserts the reservation and re-verifies, inside
	// one transaction, that no active reservation overlaps its rooms
	// and range. Returns ErrRoomsUnavailable on conflict.
	CreateIfAvailable(ctx context.Context, res *models.Reservation) error

	CountByStatus(status string) (int64, error)
	CountByDateField(field, date string) (int64, error)
	SumRevenueSince(from string) (float64, error)
}
