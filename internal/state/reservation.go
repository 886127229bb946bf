package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

const (
	defaultStartTime = "08:00"
	defaultEndTime   = "18:00"
	dateLayout       = "2006-01-02"
)

// CreateReservation tạo đặt chỗ mới cho cặp (slot, ngày). Thứ tự validate:
// thiếu field, slot ngoài phạm vi, ngày trong quá khứ, rồi conflict với
// reservation active hiện có - check đầu tiên fail là trả lỗi luôn.
// Biển số được normalize về chữ hoa. Overlay reserved* của slot được set
// ngay, kể cả khi ngày đặt không phải hôm nay (giữ nguyên hành vi cũ).
func (s *Store) CreateReservation(plate, date string, slotID int, startTime, endTime string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if plate == "" || date == "" || slotID == 0 {
		return domain.Reservation{}, fmt.Errorf("%w: biển số, ngày và slot là bắt buộc", ErrMissingField)
	}
	if slotID < 1 || slotID > s.slotsCount {
		return domain.Reservation{}, fmt.Errorf("%w: slot phải trong khoảng 1 đến %d", ErrOutOfRange, s.slotsCount)
	}

	reservationDate, err := time.ParseInLocation(dateLayout, date, s.now().Location())
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: ngày phải có dạng YYYY-MM-DD", ErrInvalidInput)
	}
	today, _ := time.ParseInLocation(dateLayout, s.today(), s.now().Location())
	if reservationDate.Before(today) {
		return domain.Reservation{}, ErrPastDate
	}

	for i := range s.reservations {
		r := &s.reservations[i]
		if r.SlotID == slotID && r.Date == date && r.Status == domain.ReservationActive {
			return domain.Reservation{}, &ConflictError{SlotID: slotID, Date: date, Plate: r.Plate}
		}
	}

	if startTime == "" {
		startTime = defaultStartTime
	}
	if endTime == "" {
		endTime = defaultEndTime
	}

	reservation := domain.Reservation{
		ID:        s.nextReservationID,
		Plate:     strings.ToUpper(plate),
		Date:      date,
		SlotID:    slotID,
		StartTime: startTime,
		EndTime:   endTime,
		CreatedAt: s.now(),
		Status:    domain.ReservationActive,
	}
	s.nextReservationID++
	s.reservations = append(s.reservations, reservation)

	slot := &s.slots[slotID-1]
	slot.Reserved = true
	slot.ReservedBy = reservation.Plate
	slot.ReservedDate = date
	slot.ReservedTime = startTime + " - " + endTime

	s.appendEvent(domain.EventReservationCreated, domain.ReservationEventData{
		Plate:  reservation.Plate,
		SlotID: slotID,
		Date:   date,
	})
	s.notifier.Broadcast(NotifyNewReservation, reservation)

	return reservation, nil
}

// CancelReservation hủy một reservation theo id. Hủy lại một reservation
// đã cancelled là no-op: trả về bản ghi như cũ, không sinh event hay
// notification, CancelledAt giữ nguyên. Overlay reserved* của slot chỉ
// được clear khi nó đang thuộc về chính reservation bị hủy, để không xóa
// nhầm overlay của một reservation active khác trên cùng slot.
func (s *Store) CancelReservation(id int64) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reservation *domain.Reservation
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			reservation = &s.reservations[i]
			break
		}
	}
	if reservation == nil {
		return domain.Reservation{}, fmt.Errorf("%w: không có reservation với id %d", ErrNotFound, id)
	}

	if reservation.Status == domain.ReservationCancelled {
		return *reservation, nil
	}

	cancelledAt := s.now()
	reservation.Status = domain.ReservationCancelled
	reservation.CancelledAt = &cancelledAt

	slot := &s.slots[reservation.SlotID-1]
	if slot.ReservedBy == reservation.Plate && slot.ReservedDate == reservation.Date {
		slot.Reserved = false
		slot.ReservedBy = ""
		slot.ReservedDate = ""
		slot.ReservedTime = ""
	}

	s.appendEvent(domain.EventReservationCancelled, domain.ReservationEventData{
		Plate:  reservation.Plate,
		SlotID: reservation.SlotID,
		Date:   reservation.Date,
	})
	s.notifier.Broadcast(NotifyReservationCancelled, *reservation)

	return *reservation, nil
}

// ListReservations trả về các reservation active, filter tùy chọn theo
// ngày và/hoặc slot. slotID = 0 nghĩa là không filter theo slot.
func (s *Store) ListReservations(date string, slotID int) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.Status != domain.ReservationActive {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		if slotID != 0 && r.SlotID != slotID {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Availability tính disponibilidad cho từng slot vào một ngày:
// available khi không có reservation active cho ngày đó và slot không
// đang occupied.
func (s *Store) Availability(date string) []domain.SlotAvailability {
	s.mu.Lock()
	defer s.mu.Unlock()

	bySlot := s.activeReservationsForDateLocked(date)

	out := make([]domain.SlotAvailability, s.slotsCount)
	for i := range s.slots {
		slot := s.slots[i]
		reservation := bySlot[slot.ID]
		out[i] = domain.SlotAvailability{
			SlotID:      slot.ID,
			Available:   reservation == nil && !slot.Occupied,
			Reservation: reservation,
			Occupied:    slot.Occupied,
		}
	}
	return out
}

// activeReservationsForDateLocked map slotId -> reservation active cho một
// ngày. Caller phải đang giữ s.mu. Trả về copy để caller giữ con trỏ được
// an toàn ngoài lock.
func (s *Store) activeReservationsForDateLocked(date string) map[int]*domain.Reservation {
	bySlot := make(map[int]*domain.Reservation)
	for _, r := range s.reservations {
		if r.Date == date && r.Status == domain.ReservationActive {
			reservation := r
			bySlot[r.SlotID] = &reservation
		}
	}
	return bySlot
}
