package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ImageStore quản lý file ảnh upload dưới baseDir, mỗi camera một thư mục
// con cam-<camId>. Đây là resource bên ngoài duy nhất của core: metadata
// nằm trong state.Store, bytes nằm ở đây.
type ImageStore struct {
	baseDir string
}

func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

// EnsureBaseDir tạo thư mục gốc uploads. Fail ở đây phải abort startup,
// caller (main) quyết định fatal.
func (st *ImageStore) EnsureBaseDir() error {
	if err := os.MkdirAll(st.baseDir, 0o755); err != nil {
		return fmt.Errorf("không thể tạo thư mục upload %s: %w", st.baseDir, err)
	}
	return nil
}

func (st *ImageStore) cameraDir(camID string) string {
	return filepath.Join(st.baseDir, "cam-"+camID)
}

// Save ghi bytes ảnh xuống đĩa, tạo thư mục camera nếu chưa có.
func (st *ImageStore) Save(camID, filename string, data []byte) error {
	dir := st.cameraDir(camID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("không thể tạo thư mục camera %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("không thể ghi file ảnh: %w", err)
	}
	return nil
}

// Remove xóa file ảnh best-effort: lỗi chỉ được log, không bao giờ trả về
// cho caller. Dùng cho cleanup khi buffer camera evict ảnh cũ.
func (st *ImageStore) Remove(camID, filename string) {
	path := filepath.Join(st.cameraDir(camID), filename)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Không thể xóa ảnh cũ %s: %v", path, err)
	}
}

// URL trả về đường dẫn public của một ảnh, khớp với route static /uploads.
func (st *ImageStore) URL(camID, filename string) string {
	return "/uploads/cam-" + camID + "/" + filename
}
