package handlers

import (
	guestRepo "innbook/database/repository/guest"
)

// HandlerBundle aggregates the handlers and the repo the auth
// middleware needs, so route registration takes one argument.
type HandlerBundle struct {
	GuestRepo guestRepo.GuestRepository

	Rooms        *RoomHandler
	Reservations *ReservationHandler
	Guests       *GuestHandler
	Services     *HotelServiceHandler
	Dashboard    *DashboardHandler
}
