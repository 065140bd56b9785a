package models

import "time"

// Room statuses as shown on the admin console.
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
)

// Room represents a physical hotel room.
type Room struct {
	ID            string    `bson:"id" json:"id"`
	RoomNumber    string    `bson:"room_number" json:"roomNumber"`
	RoomType      string    `bson:"room_type" json:"roomType"` // e.g. "STANDARD", "DELUXE", "SUITE"
	PricePerNight float64   `bson:"price_per_night" json:"pricePerNight"`
	Capacity      int       `bson:"capacity" json:"capacity"` // maximum guests
	Floor         int       `bson:"floor" json:"floor"`
	Status        string    `bson:"status" json:"status"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL      string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// RoomProjection is the read-only view of a room returned to the
// public booking site. Never mutated by clients.
type RoomProjection struct {
	ID            string  `bson:"id" json:"id"`
	RoomNumber    string  `bson:"room_number" json:"roomNumber"`
	RoomType      string  `bson:"room_type" json:"roomType"`
	PricePerNight float64 `bson:"price_per_night" json:"pricePerNight"`
	Capacity      int     `bson:"capacity" json:"capacity"`
	ImageURL      string  `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// ToProjection strips fields the public site has no business seeing.
func (r Room) ToProjection() RoomProjection {
	return RoomProjection{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		ImageURL:      r.ImageURL,
	}
}
