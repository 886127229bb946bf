package state

import (
	"sync"
	"time"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

// Notifier nhận các delta để fan-out cho subscribers. Implementation phải
// non-blocking: Store gọi Broadcast bên trong critical section.
// Interface đặt ở đây để tránh circular dependency với package notifier.
type Notifier interface {
	Broadcast(event string, payload any)
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(string, any) {}

// Tên các event realtime, giữ nguyên tên của hệ thống cũ.
const (
	NotifySlotUpdate           = "slotUpdate"
	NotifyParkingStats         = "parkingStats"
	NotifyNewReservation       = "newReservation"
	NotifyReservationCancelled = "reservationCancelled"
)

const maxEvents = 100

// Store là state aggregate duy nhất của hệ thống: slots, reservations,
// buffer ảnh camera, event log và bộ đếm cổng, tất cả sau một mutex.
// Mọi operation là một critical section ngắn, đồng bộ; reader cũng lấy
// lock để snapshot không bị torn read giữa slots và reservations.
// Không có gì được persist - state sống theo process.
type Store struct {
	mu sync.Mutex

	slotsCount      int
	maxImagesPerCam int

	entryCount int
	exitCount  int

	slots        []domain.Slot
	reservations []domain.Reservation
	cameras      map[string][]domain.CameraImage
	events       []domain.Event

	nextReservationID int64
	nextEventID       int64

	notifier Notifier
	now      func() time.Time
}

type Option func(*Store)

// WithNotifier gắn Change Notifier nhận delta broadcasts.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithClock thay clock của Store, dùng cho test các logic phụ thuộc "hôm nay".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(slotsCount, maxImagesPerCam int, opts ...Option) *Store {
	s := &Store{
		slotsCount:        slotsCount,
		maxImagesPerCam:   maxImagesPerCam,
		slots:             make([]domain.Slot, slotsCount),
		cameras:           make(map[string][]domain.CameraImage),
		nextReservationID: 1,
		nextEventID:       1,
		notifier:          noopNotifier{},
		now:               time.Now,
	}
	for i := range s.slots {
		s.slots[i] = domain.Slot{ID: i + 1}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) SlotsCount() int { return s.slotsCount }

// appendEvent thêm event vào đầu log và cắt về maxEvents entry mới nhất.
// Caller phải đang giữ s.mu.
func (s *Store) appendEvent(eventType domain.EventType, data any) {
	event := domain.Event{
		ID:        s.nextEventID,
		Type:      eventType,
		Data:      data,
		Timestamp: s.now(),
	}
	s.nextEventID++

	s.events = append(s.events, domain.Event{})
	copy(s.events[1:], s.events)
	s.events[0] = event

	if len(s.events) > maxEvents {
		s.events = s.events[:maxEvents]
	}
}

// RecentEvents trả về n event mới nhất (mới nhất trước), không mutate log.
func (s *Store) RecentEvents(n int) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 0 || n > len(s.events) {
		n = len(s.events)
	}
	out := make([]domain.Event, n)
	copy(out, s.events[:n])
	return out
}

// today trả về ngày hiện tại dạng YYYY-MM-DD theo clock của process.
func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}
