package models

// CheckAvailabilityRequest asks whether specific rooms are free for a
// date range. Dates cross the wire as "YYYY-MM-DD" strings only.
type CheckAvailabilityRequest struct {
	RoomIDs  []string `json:"roomIds" binding:"required"`
	CheckIn  string   `json:"checkIn" binding:"required"`
	CheckOut string   `json:"checkOut" binding:"required"`
}

// RoomAvailability is the per-room detail of an availability check.
type RoomAvailability struct {
	RoomID    string         `json:"roomId"`
	Available bool           `json:"available"`
	Room      RoomProjection `json:"room"`
}

// AvailabilityResult is the ephemeral result of one availability
// query. Superseded by every new query.
type AvailabilityResult struct {
	AllAvailable bool               `json:"allAvailable"`
	Rooms        []RoomAvailability `json:"rooms"`
}
