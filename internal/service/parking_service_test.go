package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yordy2001/Smart-parkin/internal/notifier"
	"github.com/Yordy2001/Smart-parkin/internal/state"
	"github.com/Yordy2001/Smart-parkin/internal/storage"
)

const testMaxUpload = 5 * 1024 * 1024

func newTestService(t *testing.T, maxImagesPerCam int) (*ParkingService, string) {
	t.Helper()
	dir := t.TempDir()

	hub := notifier.NewHub()
	store := state.NewStore(10, maxImagesPerCam, state.WithNotifier(hub))
	images := storage.NewImageStore(dir)
	require.NoError(t, images.EnsureBaseDir())

	return NewParkingService(store, hub, images, testMaxUpload), dir
}

func TestSaveCameraImageWritesFile(t *testing.T) {
	svc, dir := newTestService(t, 20)

	result, err := svc.SaveCameraImage("2", "foto.jpg", "image/jpeg", []byte("jpegbytes"))
	require.NoError(t, err)

	assert.Equal(t, "2", result.Camera)
	assert.Equal(t, 1, result.TotalImages)
	assert.Equal(t, int64(9), result.Image.Size)
	assert.Equal(t, "foto.jpg", result.Image.OriginalName)
	assert.Equal(t, "/uploads/cam-2/"+result.Image.Filename, result.Image.URL)

	data, err := os.ReadFile(filepath.Join(dir, "cam-2", result.Image.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpegbytes"), data)
}

func TestSaveCameraImageValidation(t *testing.T) {
	svc, _ := newTestService(t, 20)

	_, err := svc.SaveCameraImage("1", "foto.jpg", "image/jpeg", nil)
	assert.ErrorIs(t, err, ErrMissingImage)

	_, err = svc.SaveCameraImage("1", "foto.jpg", "image/jpeg", bytes.Repeat([]byte("x"), testMaxUpload+1))
	assert.ErrorIs(t, err, ErrImageTooLarge)

	_, err = svc.SaveCameraImage("1", "doc.pdf", "application/pdf", []byte("pdf"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	// Không có file nào được ghi và không có ảnh nào vào buffer.
	_, err = svc.LatestImage("1")
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestSaveCameraImageDefaultExtension(t *testing.T) {
	svc, _ := newTestService(t, 20)

	result, err := svc.SaveCameraImage("1", "sin-extension", "image/jpeg", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(result.Image.Filename))
}

func TestEvictionRemovesOldFiles(t *testing.T) {
	svc, dir := newTestService(t, 3)

	var filenames []string
	for i := 0; i < 5; i++ {
		result, err := svc.SaveCameraImage("9", fmt.Sprintf("img-%d.jpg", i), "image/jpeg", []byte("data"))
		require.NoError(t, err)
		filenames = append(filenames, result.Image.Filename)
	}

	// Xóa file chạy fire-and-forget; chờ nó hoàn thành.
	assert.Eventually(t, func() bool {
		for _, old := range filenames[:2] {
			if _, err := os.Stat(filepath.Join(dir, "cam-9", old)); !os.IsNotExist(err) {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond, "file bị evict phải được xóa khỏi đĩa")

	// 3 file mới nhất còn nguyên.
	for _, kept := range filenames[2:] {
		_, err := os.Stat(filepath.Join(dir, "cam-9", kept))
		assert.NoError(t, err)
	}

	latest, err := svc.LatestImage("9")
	require.NoError(t, err)
	assert.Equal(t, filenames[4], latest.Filename)
}

func TestAvailabilityRequiresDate(t *testing.T) {
	svc, _ := newTestService(t, 20)

	_, err := svc.Availability("")
	assert.ErrorIs(t, err, state.ErrMissingField)

	availability, err := svc.Availability("2030-01-01")
	require.NoError(t, err)
	assert.Len(t, availability, 10)
}

func TestSubscribeDeliversInitialState(t *testing.T) {
	svc, _ := newTestService(t, 20)

	_, err := svc.SetSlotOccupancy(3, true)
	require.NoError(t, err)

	sub := svc.Subscribe()
	defer svc.Unsubscribe(sub.ID)

	select {
	case message := <-sub.C:
		assert.Contains(t, string(message), `"event":"initialState"`)
		assert.Contains(t, string(message), `"occupiedSlots":1`)
	case <-time.After(time.Second):
		t.Fatal("không nhận được initialState")
	}
}
