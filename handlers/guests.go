package handlers

import (
	"net/http"

	"innbook/models"
	"innbook/services/guest"
	"innbook/utils"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves guest account and authentication endpoints.
type GuestHandler struct {
	GuestSvc guest.GuestService
}

// NewGuestHandler creates a GuestHandler.
func NewGuestHandler(guestSvc guest.GuestService) *GuestHandler {
	return &GuestHandler{GuestSvc: guestSvc}
}

// RegisterGuestHandler creates an account for the public site.
func (h *GuestHandler) RegisterGuestHandler(c *gin.Context) {
	var reg models.GuestRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g, err := h.GuestSvc.Register(reg)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, g)
}

// AuthenticateGuestHandler verifies credentials and issues a token.
func (h *GuestHandler) AuthenticateGuestHandler(c *gin.Context) {
	var creds models.GuestCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	g, token, err := h.GuestSvc.Authenticate(creds)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"guest": g,
		"token": token,
	})
}

// GetCurrentGuestHandler returns the authenticated guest's profile.
func (h *GuestHandler) GetCurrentGuestHandler(c *gin.Context) {
	g, err := h.GuestSvc.GetByID(c.GetString("guestID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch profile", err.Error())
		return
	}
	if g == nil {
		utils.JSONError(c, http.StatusNotFound, "guest not found", "")
		return
	}
	c.JSON(http.StatusOK, g)
}

// RevokeGuestTokenHandler signs the guest out everywhere.
func (h *GuestHandler) RevokeGuestTokenHandler(c *gin.Context) {
	if err := h.GuestSvc.RevokeToken(c.GetString("guestID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}

// ListGuestsHandler lists every guest account (staff only).
func (h *GuestHandler) ListGuestsHandler(c *gin.Context) {
	guests, err := h.GuestSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list guests", err.Error())
		return
	}
	c.JSON(http.StatusOK, guests)
}

// UpdateGuestHandler modifies a guest account (staff only).
func (h *GuestHandler) UpdateGuestHandler(c *gin.Context) {
	var g models.Guest
	if err := c.ShouldBindJSON(&g); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	g.ID = c.Param("id")

	updated, err := h.GuestSvc.Update(g)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update guest", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGuestHandler removes a guest account (staff only).
func (h *GuestHandler) DeleteGuestHandler(c *gin.Context) {
	if err := h.GuestSvc.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to delete guest", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
