package handlers

import (
	"net/http"

	"innbook/models"
	"innbook/services/availability"
	"innbook/services/room"
	"innbook/services/storage"
	"innbook/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves room inventory and availability endpoints.
type RoomHandler struct {
	RoomSvc         room.RoomService
	AvailabilitySvc availability.AvailabilityService
	Storage         storage.StorageService
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(roomSvc room.RoomService, availSvc availability.AvailabilityService, storageSvc storage.StorageService) *RoomHandler {
	return &RoomHandler{RoomSvc: roomSvc, AvailabilitySvc: availSvc, Storage: storageSvc}
}

// ListRoomsHandler returns projections of every room. This is the
// degraded-mode list the public site falls back to.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.RoomSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms", err.Error())
		return
	}
	out := make([]models.RoomProjection, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ToProjection())
	}
	c.JSON(http.StatusOK, out)
}

// GetAvailableRoomsHandler returns rooms free for ?checkIn=...&checkOut=...
func (h *RoomHandler) GetAvailableRoomsHandler(c *gin.Context) {
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")
	if checkIn == "" || checkOut == "" {
		utils.JSONError(c, http.StatusBadRequest, "checkIn and checkOut are required", "")
		return
	}

	rooms, err := h.AvailabilitySvc.FindAvailableRooms(checkIn, checkOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}
	if rooms == nil {
		rooms = []models.RoomProjection{}
	}
	c.JSON(http.StatusOK, rooms)
}

// CheckAvailabilityHandler reports per-room availability for a range.
func (h *RoomHandler) CheckAvailabilityHandler(c *gin.Context) {
	var req models.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.AvailabilitySvc.CheckRooms(req.RoomIDs, req.CheckIn, req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "availability check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRoomByIDHandler returns one room with full detail.
func (h *RoomHandler) GetRoomByIDHandler(c *gin.Context) {
	id := c.Param("id")
	rm, err := h.RoomSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch room", err.Error())
		return
	}
	if rm == nil {
		utils.JSONError(c, http.StatusNotFound, "room not found", "")
		return
	}
	c.JSON(http.StatusOK, rm)
}

// CreateRoomHandler adds a room to the inventory (staff only).
func (h *RoomHandler) CreateRoomHandler(c *gin.Context) {
	var rm models.Room
	if err := c.ShouldBindJSON(&rm); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.RoomSvc.Create(rm)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateRoomHandler modifies a room (staff only).
func (h *RoomHandler) UpdateRoomHandler(c *gin.Context) {
	var rm models.Room
	if err := c.ShouldBindJSON(&rm); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rm.ID = c.Param("id")

	updated, err := h.RoomSvc.Update(rm)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update room", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRoomHandler removes a room (staff only).
func (h *RoomHandler) DeleteRoomHandler(c *gin.Context) {
	if err := h.RoomSvc.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to delete room", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UploadRoomImageHandler stores a room photo and attaches its URL
// (staff only).
func (h *RoomHandler) UploadRoomImageHandler(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file is required", err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read image", err.Error())
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, "rooms")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image", err.Error())
		return
	}

	updated, err := h.RoomSvc.SetImageURL(id, url)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to attach image", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}
