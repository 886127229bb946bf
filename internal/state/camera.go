package state

import (
	"fmt"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

// AppendImage thêm metadata ảnh vào buffer của một camera. CamID không
// được validate theo CAMERAS_COUNT - id lạ sẽ lazily tạo buffer mới, vì
// số camera khai báo chỉ mang tính advisory. Sau khi append, buffer được
// evict từ đầu cho tới khi không vượt MAX_IMAGES_PER_CAM; các record bị
// evict được trả về để caller giải phóng file ngoài critical section.
func (s *Store) AppendImage(camID string, image domain.CameraImage) (total int, evicted []domain.CameraImage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	images := append(s.cameras[camID], image)
	if overflow := len(images) - s.maxImagesPerCam; overflow > 0 {
		evicted = make([]domain.CameraImage, overflow)
		copy(evicted, images[:overflow])
		images = images[overflow:]
	}
	s.cameras[camID] = images

	s.appendEvent(domain.EventCameraImage, domain.CameraImageData{
		CamID:    camID,
		Filename: image.Filename,
	})

	return len(images), evicted
}

// LatestImage trả về ảnh mới nhất của một camera.
func (s *Store) LatestImage(camID string) (domain.CameraImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	images := s.cameras[camID]
	if len(images) == 0 {
		return domain.CameraImage{}, fmt.Errorf("%w: không có ảnh nào cho camera %s", ErrNotFound, camID)
	}
	return images[len(images)-1], nil
}

// CameraImages trả về copy buffer ảnh của một camera, theo thứ tự append.
func (s *Store) CameraImages(camID string) []domain.CameraImage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CameraImage, len(s.cameras[camID]))
	copy(out, s.cameras[camID])
	return out
}
