package state

import "github.com/Yordy2001/Smart-parkin/internal/domain"

const lastEventsInSnapshot = 10

// Snapshot tính view tổng hợp nhất quán của toàn bộ state trong một
// critical section: counters, phân loại từng slot và reservations của hôm
// nay. Precedence phân loại: occupied > reserved > available - slot vừa
// occupied vừa có reservation hôm nay báo là occupied.
func (s *Store) Snapshot() domain.StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	bySlot := s.activeReservationsForDateLocked(today)

	todayReservations := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.Date == today && r.Status == domain.ReservationActive {
			todayReservations = append(todayReservations, r)
		}
	}

	var occupied, reserved, available int
	slots := make([]domain.SlotView, len(s.slots))
	for i, slot := range s.slots {
		reservation := bySlot[slot.ID]
		view := domain.SlotView{Slot: slot, Reservation: reservation}

		switch {
		case slot.Occupied:
			view.Status = domain.StatusOccupied
			occupied++
		case reservation != nil:
			view.Status = domain.StatusReserved
			reserved++
		default:
			view.Status = domain.StatusAvailable
			available++
		}
		slots[i] = view
	}

	n := lastEventsInSnapshot
	if n > len(s.events) {
		n = len(s.events)
	}
	lastEvents := make([]domain.Event, n)
	copy(lastEvents, s.events[:n])

	return domain.StatusSnapshot{
		EntryCount:        s.entryCount,
		ExitCount:         s.exitCount,
		VehiclesInside:    s.entryCount - s.exitCount,
		OccupiedSlots:     occupied,
		ReservedSlots:     reserved,
		AvailableSlots:    available,
		TotalSlots:        s.slotsCount,
		Slots:             slots,
		TodayReservations: todayReservations,
		LastEvents:        lastEvents,
	}
}
