package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/service"
	"github.com/Yordy2001/Smart-parkin/internal/state"
)

type SlotHandler struct {
	parkingService *service.ParkingService
}

func NewSlotHandler(ps *service.ParkingService) *SlotHandler {
	return &SlotHandler{parkingService: ps}
}

type slotUpdateRequest struct {
	// Con trỏ để phân biệt false với field bị thiếu/sai kiểu.
	Occupied *bool `json:"occupied"`
}

// POST /api/slot/:id
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot ID không hợp lệ"})
		return
	}

	var req slotUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Occupied == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trường occupied phải là true hoặc false"})
		return
	}

	update, err := h.parkingService.SetSlotOccupancy(slotID, *req.Occupied)
	if err != nil {
		if errors.Is(err, state.ErrOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"slot": gin.H{
			"id":          update.Slot.ID,
			"occupied":    update.Slot.Occupied,
			"wasOccupied": update.WasOccupied,
			"updatedAt":   update.UpdatedAt,
			"changed":     update.Changed,
		},
	})
}
