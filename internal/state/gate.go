package state

import (
	"fmt"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

const (
	GateEntry = "entry"
	GateExit  = "exit"
)

// RecordGateEvent tăng bộ đếm vào/ra từ sensor IR ở cổng. Hai bộ đếm chỉ
// tăng, không bao giờ reset; operation này luôn sinh event, không có no-op.
func (s *Store) RecordGateEvent(kind string, vehicleID string) (domain.GateCounters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case GateEntry:
		s.entryCount++
		s.appendEvent(domain.EventEntry, domain.GateEventData{VehicleID: vehicleID, Count: s.entryCount})
	case GateExit:
		s.exitCount++
		s.appendEvent(domain.EventExit, domain.GateEventData{VehicleID: vehicleID, Count: s.exitCount})
	default:
		return domain.GateCounters{}, fmt.Errorf("%w: sensor phải là \"entry\" hoặc \"exit\"", ErrInvalidInput)
	}

	return domain.GateCounters{
		EntryCount:     s.entryCount,
		ExitCount:      s.exitCount,
		VehiclesInside: s.entryCount - s.exitCount,
	}, nil
}
