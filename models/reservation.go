package models

import "time"

// Reservation lifecycle statuses.
const (
	ReservationStatusPending    = "PENDING"
	ReservationStatusConfirmed  = "CONFIRMED"
	ReservationStatusCheckedIn  = "CHECKED_IN"
	ReservationStatusCheckedOut = "CHECKED_OUT"
	ReservationStatusCancelled  = "CANCELLED"
)

// Reservation is a durable booking record. The server owns identity
// and lifecycle; clients only ever submit drafts.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	GuestID         string    `bson:"guest_id" json:"guestId"`
	RoomIDs         []string  `bson:"room_ids" json:"roomIds"`
	CheckIn         string    `bson:"check_in" json:"checkIn"`   // "YYYY-MM-DD"
	CheckOut        string    `bson:"check_out" json:"checkOut"` // "YYYY-MM-DD"
	NumberOfGuests  int       `bson:"number_of_guests" json:"numberOfGuests"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	Status          string    `bson:"status" json:"status"`
	TotalPrice      float64   `bson:"total_price" json:"totalPrice"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReservationDraft is the client-constructed, not-yet-persisted
// representation of a booking request.
type ReservationDraft struct {
	GuestID         string   `json:"guestId"`
	RoomIDs         []string `json:"roomIds"`
	CheckIn         string   `json:"checkIn"`
	CheckOut        string   `json:"checkOut"`
	NumberOfGuests  int      `json:"numberOfGuests"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	Status          string   `json:"status"`
}

// Active reports whether the reservation still occupies its rooms.
func (r Reservation) Active() bool {
	switch r.Status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn:
		return true
	}
	return false
}
