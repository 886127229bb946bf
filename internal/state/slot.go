package state

import (
	"fmt"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

// SetOccupancy ghi trạng thái occupancy cho một slot. Giá trị client gửi
// lên là trạng thái MỚI; Changed so với trạng thái trước đó. Ghi lại cùng
// giá trị không phải lỗi: UpdatedAt vẫn được cập nhật nhưng không sinh
// event hay notification trùng.
func (s *Store) SetOccupancy(slotID int, occupied bool) (domain.SlotUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slotID < 1 || slotID > s.slotsCount {
		return domain.SlotUpdate{}, fmt.Errorf("%w: slot id phải trong khoảng 1 đến %d", ErrOutOfRange, s.slotsCount)
	}

	slot := &s.slots[slotID-1]
	wasOccupied := slot.Occupied
	timestamp := s.now()

	slot.Occupied = occupied
	slot.UpdatedAt = &timestamp

	changed := wasOccupied != occupied
	if changed {
		s.appendEvent(domain.EventSlotUpdate, domain.SlotUpdateData{
			SlotID:        slotID,
			Occupied:      occupied,
			PreviousState: wasOccupied,
		})

		s.notifier.Broadcast(NotifySlotUpdate, domain.SlotChange{
			SlotID:      slotID,
			Occupied:    occupied,
			WasOccupied: wasOccupied,
			Timestamp:   timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		})
		s.notifier.Broadcast(NotifyParkingStats, s.statsLocked())
	}

	return domain.SlotUpdate{
		Slot:        *slot,
		WasOccupied: wasOccupied,
		Changed:     changed,
		UpdatedAt:   slot.UpdatedAt,
	}, nil
}

// statsLocked tính payload thống kê gọn. Caller phải đang giữ s.mu.
func (s *Store) statsLocked() domain.ParkingStats {
	occupied := 0
	for i := range s.slots {
		if s.slots[i].Occupied {
			occupied++
		}
	}
	slots := make([]domain.Slot, len(s.slots))
	copy(slots, s.slots)
	return domain.ParkingStats{
		OccupiedSlots:  occupied,
		AvailableSlots: s.slotsCount - occupied,
		TotalSlots:     s.slotsCount,
		Slots:          slots,
	}
}
