package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/service"
	"github.com/Yordy2001/Smart-parkin/internal/state"
)

type ReservationHandler struct {
	parkingService *service.ParkingService
}

func NewReservationHandler(ps *service.ParkingService) *ReservationHandler {
	return &ReservationHandler{parkingService: ps}
}

type createReservationRequest struct {
	Plate     string `json:"plate"`
	Date      string `json:"date"`
	SlotID    int    `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// POST /api/reservations
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu không hợp lệ: " + err.Error()})
		return
	}

	reservation, err := h.parkingService.CreateReservation(req.Plate, req.Date, req.SlotID, req.StartTime, req.EndTime)
	if err != nil {
		var conflict *state.ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Slot " + strconv.Itoa(conflict.SlotID) + " đã được đặt cho ngày " +
					conflict.Date + " bởi " + conflict.Plate,
			})
		case errors.Is(err, state.ErrMissingField),
			errors.Is(err, state.ErrOutOfRange),
			errors.Is(err, state.ErrPastDate),
			errors.Is(err, state.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"reservation": reservation,
	})
}

// GET /api/reservations?date=YYYY-MM-DD&slotId=N
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	date := c.Query("date")
	slotID := 0
	if raw := c.Query("slotId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "slotId không hợp lệ"})
			return
		}
		slotID = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"reservations": h.parkingService.ListReservations(date, slotID),
	})
}

// DELETE /api/reservations/:id
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reservation ID không hợp lệ"})
		return
	}

	if _, err := h.parkingService.CancelReservation(id); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy reservation"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đã hủy đặt chỗ thành công",
	})
}

// GET /api/slots/availability?date=YYYY-MM-DD
func (h *ReservationHandler) Availability(c *gin.Context) {
	date := c.Query("date")

	availability, err := h.parkingService.Availability(date)
	if err != nil {
		if errors.Is(err, state.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ngày là bắt buộc"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"date":         date,
		"availability": availability,
	})
}
