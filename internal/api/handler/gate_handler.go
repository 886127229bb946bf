package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/service"
	"github.com/Yordy2001/Smart-parkin/internal/state"
)

type GateHandler struct {
	parkingService *service.ParkingService
}

func NewGateHandler(ps *service.ParkingService) *GateHandler {
	return &GateHandler{parkingService: ps}
}

type gateRequest struct {
	Sensor    string `json:"sensor"`
	VehicleID string `json:"vehicleId"`
}

// POST /api/gate
func (h *GateHandler) RecordGateEvent(c *gin.Context) {
	var req gateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ: " + err.Error()})
		return
	}

	counters, err := h.parkingService.RecordGateEvent(req.Sensor, req.VehicleID)
	if err != nil {
		if errors.Is(err, state.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Trường sensor phải là "entry" hoặc "exit"`})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"entryCount":     counters.EntryCount,
		"exitCount":      counters.ExitCount,
		"vehiclesInside": counters.VehiclesInside,
	})
}
