package domain

import "time"

// CameraImage - metadata của một ảnh ESP32-CAM đã lưu. Bytes thật nằm trên
// đĩa dưới UPLOAD_DIR/cam-<camId>/<filename>.
type CameraImage struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalname"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	Timestamp    time.Time `json:"timestamp"`
}

// CameraUploadResult - trả về cho thiết bị sau khi upload thành công.
type CameraUploadResult struct {
	Camera      string      `json:"camera"`
	Image       CameraImage `json:"image"`
	TotalImages int         `json:"totalImages"`
}
