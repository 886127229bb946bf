package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/service"
)

type StatusHandler struct {
	parkingService *service.ParkingService
}

func NewStatusHandler(ps *service.ParkingService) *StatusHandler {
	return &StatusHandler{parkingService: ps}
}

// GET /api/status
func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.parkingService.Status())
}

// GET /api/events?limit=N
func (h *StatusHandler) GetEvents(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit không hợp lệ"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  h.parkingService.RecentEvents(limit),
	})
}
