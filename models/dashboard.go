package models

// DashboardStats feeds the staff console overview page.
type DashboardStats struct {
	TotalRooms          int     `json:"totalRooms"`
	OccupiedRooms       int     `json:"occupiedRooms"`
	PendingReservations int     `json:"pendingReservations"`
	ArrivalsToday       int     `json:"arrivalsToday"`
	DeparturesToday     int     `json:"departuresToday"`
	RevenueThisMonth    float64 `json:"revenueThisMonth"`
}
