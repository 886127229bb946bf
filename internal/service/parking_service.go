package service

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
	"github.com/Yordy2001/Smart-parkin/internal/notifier"
	"github.com/Yordy2001/Smart-parkin/internal/state"
	"github.com/Yordy2001/Smart-parkin/internal/storage"
)

// Lỗi của flow upload ảnh, boundary map ra 400.
var ErrMissingImage = errors.New("không nhận được ảnh nào, dùng field \"image\"")
var ErrImageTooLarge = errors.New("file quá lớn (tối đa 5MB)")
var ErrNotAnImage = errors.New("chỉ chấp nhận file ảnh")

// ParkingService bọc state core, notifier hub và image store. Handlers chỉ
// nói chuyện với service, với input đã được parse/validate ở boundary.
type ParkingService struct {
	store          *state.Store
	hub            *notifier.Hub
	images         *storage.ImageStore
	maxUploadBytes int64
}

func NewParkingService(store *state.Store, hub *notifier.Hub, images *storage.ImageStore, maxUploadBytes int64) *ParkingService {
	return &ParkingService{
		store:          store,
		hub:            hub,
		images:         images,
		maxUploadBytes: maxUploadBytes,
	}
}

// --- Gate ---

func (s *ParkingService) RecordGateEvent(kind, vehicleID string) (domain.GateCounters, error) {
	counters, err := s.store.RecordGateEvent(kind, vehicleID)
	if err != nil {
		return domain.GateCounters{}, err
	}
	if kind == state.GateEntry {
		log.Printf("Xe vào bãi. Tổng lượt vào: %d", counters.EntryCount)
	} else {
		log.Printf("Xe ra khỏi bãi. Tổng lượt ra: %d", counters.ExitCount)
	}
	return counters, nil
}

// --- Slots ---

func (s *ParkingService) SetSlotOccupancy(slotID int, occupied bool) (domain.SlotUpdate, error) {
	update, err := s.store.SetOccupancy(slotID, occupied)
	if err != nil {
		return domain.SlotUpdate{}, err
	}
	if update.Changed {
		log.Printf("Slot %d đổi trạng thái: occupied=%t (trước đó %t)", slotID, occupied, update.WasOccupied)
	}
	return update, nil
}

// --- Reservations ---

func (s *ParkingService) CreateReservation(plate, date string, slotID int, startTime, endTime string) (domain.Reservation, error) {
	reservation, err := s.store.CreateReservation(plate, date, slotID, startTime, endTime)
	if err != nil {
		return domain.Reservation{}, err
	}
	log.Printf("Đặt chỗ mới: %s - Slot %d - %s", reservation.Plate, reservation.SlotID, reservation.Date)
	return reservation, nil
}

func (s *ParkingService) CancelReservation(id int64) (domain.Reservation, error) {
	reservation, err := s.store.CancelReservation(id)
	if err != nil {
		return domain.Reservation{}, err
	}
	log.Printf("Đã hủy đặt chỗ: %s - Slot %d", reservation.Plate, reservation.SlotID)
	return reservation, nil
}

func (s *ParkingService) ListReservations(date string, slotID int) []domain.Reservation {
	return s.store.ListReservations(date, slotID)
}

func (s *ParkingService) Availability(date string) ([]domain.SlotAvailability, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: ngày là bắt buộc", state.ErrMissingField)
	}
	return s.store.Availability(date), nil
}

// --- Cameras ---

// SaveCameraImage validate upload, ghi file xuống đĩa rồi mới append
// metadata vào core - file I/O nằm ngoài critical section. File bị evict
// khỏi buffer được xóa trong goroutine riêng, fire-and-forget: lỗi xóa
// không bao giờ tới được caller.
func (s *ParkingService) SaveCameraImage(camID, originalName, contentType string, data []byte) (domain.CameraUploadResult, error) {
	if len(data) == 0 {
		return domain.CameraUploadResult{}, ErrMissingImage
	}
	if int64(len(data)) > s.maxUploadBytes {
		return domain.CameraUploadResult{}, ErrImageTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return domain.CameraUploadResult{}, ErrNotAnImage
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	filename := uuid.New().String() + ext

	if err := s.images.Save(camID, filename, data); err != nil {
		return domain.CameraUploadResult{}, err
	}

	image := domain.CameraImage{
		Filename:     filename,
		OriginalName: originalName,
		Size:         int64(len(data)),
		URL:          s.images.URL(camID, filename),
		Timestamp:    time.Now(),
	}

	total, evicted := s.store.AppendImage(camID, image)
	for _, old := range evicted {
		go s.images.Remove(camID, old.Filename)
	}

	log.Printf("Ảnh mới từ camera %s: %s (%d ảnh trong buffer)", camID, filename, total)
	return domain.CameraUploadResult{Camera: camID, Image: image, TotalImages: total}, nil
}

func (s *ParkingService) LatestImage(camID string) (domain.CameraImage, error) {
	return s.store.LatestImage(camID)
}

// --- Status & events ---

func (s *ParkingService) Status() domain.StatusSnapshot {
	return s.store.Snapshot()
}

func (s *ParkingService) RecentEvents(n int) []domain.Event {
	return s.store.RecentEvents(n)
}

// --- Realtime ---

// Subscribe đăng ký subscriber mới và đẩy ngay full snapshot hiện tại
// trước mọi delta.
func (s *ParkingService) Subscribe() *notifier.Subscription {
	sub := s.hub.Subscribe()
	s.hub.Send(sub.ID, "initialState", s.store.Snapshot())
	return sub
}

func (s *ParkingService) Unsubscribe(id string) {
	s.hub.Unsubscribe(id)
}
