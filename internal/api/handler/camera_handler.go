package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yordy2001/Smart-parkin/internal/service"
	"github.com/Yordy2001/Smart-parkin/internal/state"
)

type CameraHandler struct {
	parkingService *service.ParkingService
}

func NewCameraHandler(ps *service.ParkingService) *CameraHandler {
	return &CameraHandler{parkingService: ps}
}

// POST /api/camera/:camId/upload
// Nhận ảnh multipart từ ESP32-CAM, field "image". CamID không bị giới hạn
// theo số camera khai báo.
func (h *CameraHandler) UploadImage(c *gin.Context) {
	camID := c.Param("camId")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingImage.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không thể đọc file upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không thể đọc file upload"})
		return
	}

	result, err := h.parkingService.SaveCameraImage(camID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingImage),
			errors.Is(err, service.ErrImageTooLarge),
			errors.Is(err, service.ErrNotAnImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu ảnh", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"camera":      result.Camera,
		"image":       result.Image,
		"totalImages": result.TotalImages,
	})
}

// GET /api/camera/:camId/latest
func (h *CameraHandler) LatestImage(c *gin.Context) {
	camID := c.Param("camId")

	image, err := h.parkingService.LatestImage(camID)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không có ảnh nào cho camera " + camID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"camera":  camID,
		"image":   image,
	})
}
