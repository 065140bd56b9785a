package handlers

import (
	"net/http"
	"time"

	reservationRepo "innbook/database/repository/reservation"
	roomRepo "innbook/database/repository/room"
	"innbook/models"
	"innbook/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler assembles the staff console overview numbers.
type DashboardHandler struct {
	RoomRepo        roomRepo.RoomRepository
	ReservationRepo reservationRepo.ReservationRepository
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(rooms roomRepo.RoomRepository, reservations reservationRepo.ReservationRepository) *DashboardHandler {
	return &DashboardHandler{RoomRepo: rooms, ReservationRepo: reservations}
}

// GetStatsHandler returns the dashboard snapshot (staff only).
func (h *DashboardHandler) GetStatsHandler(c *gin.Context) {
	today := models.FormatStayDate(time.Now())
	monthStart := models.FormatStayDate(time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.UTC))

	rooms, err := h.RoomRepo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms", err.Error())
		return
	}
	occupied, err := h.RoomRepo.CountByStatus(models.RoomStatusOccupied)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count rooms", err.Error())
		return
	}
	pending, err := h.ReservationRepo.CountByStatus(models.ReservationStatusPending)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count reservations", err.Error())
		return
	}
	arrivals, err := h.ReservationRepo.CountByDateField("check_in", today)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count arrivals", err.Error())
		return
	}
	departures, err := h.ReservationRepo.CountByDateField("check_out", today)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count departures", err.Error())
		return
	}
	revenue, err := h.ReservationRepo.SumRevenueSince(monthStart)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to sum revenue", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		TotalRooms:          len(rooms),
		OccupiedRooms:       int(occupied),
		PendingReservations: int(pending),
		ArrivalsToday:       int(arrivals),
		DeparturesToday:     int(departures),
		RevenueThisMonth:    revenue,
	})
}
