package availability

import "innbook/models"

// AvailabilityService answers which rooms are free for a date range.
// It is the authoritative source the public site and the staff console
// both query; answers are advisory until create time, when the
// reservation repository re-checks inside a transaction.
type AvailabilityService interface {
	FindAvailableRooms(checkIn, checkOut string) ([]models.RoomProjection, error)
	CheckRooms(roomIDs []string, checkIn, checkOut string) (*models.AvailabilityResult, error)
	QuoteTotal(roomIDs []string, rng models.DateRange) (float64, error)
}
