package handlers

import (
	"errors"
	"net/http"

	"innbook/models"
	"innbook/services/payment"
	"innbook/services/reservation"
	"innbook/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler serves reservation lifecycle endpoints.
type ReservationHandler struct {
	ResSvc   reservation.ReservationService
	Checkout payment.CheckoutService
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(resSvc reservation.ReservationService, checkout payment.CheckoutService) *ReservationHandler {
	return &ReservationHandler{ResSvc: resSvc, Checkout: checkout}
}

// CreateReservationHandler persists a PENDING reservation for the
// authenticated guest. A conflict maps to 409 with the reason in the
// message so clients can surface it verbatim.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	var draft models.ReservationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	// The session identity wins over whatever the body claims.
	draft.GuestID = c.GetString("guestID")

	res, err := h.ResSvc.Create(c.Request.Context(), draft)
	if err != nil {
		var conflict *reservation.ConflictError
		if errors.As(err, &conflict) {
			utils.JSONError(c, http.StatusConflict, conflict.Message, "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetMyReservationsHandler lists the authenticated guest's reservations.
func (h *ReservationHandler) GetMyReservationsHandler(c *gin.Context) {
	guestID := c.GetString("guestID")
	out, err := h.ResSvc.GetByGuest(guestID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetReservationHandler fetches one reservation. Guests may only see
// their own.
func (h *ReservationHandler) GetReservationHandler(c *gin.Context) {
	res, err := h.ResSvc.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reservation", err.Error())
		return
	}
	if res == nil || res.GuestID != c.GetString("guestID") {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateCheckoutIntentHandler starts payment for a PENDING reservation.
func (h *ReservationHandler) CreateCheckoutIntentHandler(c *gin.Context) {
	res, err := h.ResSvc.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reservation", err.Error())
		return
	}
	if res == nil || res.GuestID != c.GetString("guestID") {
		utils.JSONError(c, http.StatusNotFound, "reservation not found", "")
		return
	}

	intent, err := h.Checkout.CreateCheckoutIntent(res)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to start checkout", err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ConfirmReservationHandler marks a paid reservation CONFIRMED.
func (h *ReservationHandler) ConfirmReservationHandler(c *gin.Context) {
	res, err := h.ResSvc.Confirm(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to confirm reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// CancelReservationHandler releases a reservation.
func (h *ReservationHandler) CancelReservationHandler(c *gin.Context) {
	res, err := h.ResSvc.Cancel(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to cancel reservation", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReservationsHandler lists every reservation (staff only).
func (h *ReservationHandler) ListReservationsHandler(c *gin.Context) {
	out, err := h.ResSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, out)
}

// CheckInHandler marks an arrival (staff only).
func (h *ReservationHandler) CheckInHandler(c *gin.Context) {
	res, err := h.ResSvc.CheckIn(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to check in", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}

// CheckOutHandler marks a departure (staff only).
func (h *ReservationHandler) CheckOutHandler(c *gin.Context) {
	res, err := h.ResSvc.CheckOut(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to check out", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}
