package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	SlotsCount      int
	CamerasCount    int // advisory: expected ESP32-CAM count, never enforced on uploads
	MaxImagesPerCam int
	MaxUploadBytes  int64
	UploadDir       string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Cảnh báo: Không thể tải file .env: %v", err)
	}

	slotsCount, _ := strconv.Atoi(getEnv("SLOTS_COUNT", "10"))
	camerasCount, _ := strconv.Atoi(getEnv("CAMERAS_COUNT", "5"))
	maxImages, _ := strconv.Atoi(getEnv("MAX_IMAGES_PER_CAM", "20"))
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "5242880"), 10, 64)

	return &Config{
		ServerPort:      getEnv("PORT", "3000"),
		SlotsCount:      slotsCount,
		CamerasCount:    camerasCount,
		MaxImagesPerCam: maxImages,
		MaxUploadBytes:  maxUpload,
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
