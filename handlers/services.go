package handlers

import (
	"net/http"

	"innbook/models"
	"innbook/services/hotelservice"
	"innbook/utils"

	"github.com/gin-gonic/gin"
)

// HotelServiceHandler serves add-on service catalog endpoints.
type HotelServiceHandler struct {
	Catalog hotelservice.HotelServiceCatalog
}

// NewHotelServiceHandler creates a HotelServiceHandler.
func NewHotelServiceHandler(catalog hotelservice.HotelServiceCatalog) *HotelServiceHandler {
	return &HotelServiceHandler{Catalog: catalog}
}

// ListServicesHandler returns active services for the public site, or
// all of them with ?all=true for the staff console.
func (h *HotelServiceHandler) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	services, err := h.Catalog.GetAll(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateServiceHandler adds a service to the catalog (staff only).
func (h *HotelServiceHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.HotelService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Catalog.Create(svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler modifies a catalog entry (staff only).
func (h *HotelServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.HotelService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.Catalog.Update(svc)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler removes a catalog entry (staff only).
func (h *HotelServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
