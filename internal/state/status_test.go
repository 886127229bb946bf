package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yordy2001/Smart-parkin/internal/domain"
)

func TestSnapshotEmpty(t *testing.T) {
	store, _ := newReservationStore()

	snapshot := store.Snapshot()
	assert.Equal(t, 0, snapshot.EntryCount)
	assert.Equal(t, 0, snapshot.ExitCount)
	assert.Equal(t, 0, snapshot.VehiclesInside)
	assert.Equal(t, 0, snapshot.OccupiedSlots)
	assert.Equal(t, 0, snapshot.ReservedSlots)
	assert.Equal(t, 10, snapshot.AvailableSlots)
	assert.Equal(t, 10, snapshot.TotalSlots)
	require.Len(t, snapshot.Slots, 10)
	assert.Empty(t, snapshot.TodayReservations)
	assert.Empty(t, snapshot.LastEvents)
}

func TestSnapshotScenario(t *testing.T) {
	store, _ := newReservationStore()

	// Slots 1..10 trống → slot 3 occupied.
	_, err := store.SetOccupancy(3, true)
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, 1, snapshot.OccupiedSlots)
	assert.Equal(t, domain.StatusOccupied, snapshot.Slots[2].Status)

	// Đặt chỗ cho chính slot 3 hôm nay: occupied thắng reserved.
	_, err = store.CreateReservation("ABC123", testToday, 3, "", "")
	require.NoError(t, err)

	snapshot = store.Snapshot()
	assert.Equal(t, domain.StatusOccupied, snapshot.Slots[2].Status)
	assert.Equal(t, 1, snapshot.OccupiedSlots)
	assert.Equal(t, 0, snapshot.ReservedSlots, "slot vừa occupied vừa reserved chỉ đếm là occupied")
	assert.Equal(t, 9, snapshot.AvailableSlots)

	// Reservation vẫn xuất hiện trong todayReservations và gắn vào slot view.
	require.Len(t, snapshot.TodayReservations, 1)
	require.NotNil(t, snapshot.Slots[2].Reservation)
	assert.Equal(t, "ABC123", snapshot.Slots[2].Reservation.Plate)
}

func TestSnapshotReservedPrecedence(t *testing.T) {
	store, _ := newReservationStore()

	_, err := store.CreateReservation("ABC123", testToday, 7, "", "")
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, domain.StatusReserved, snapshot.Slots[6].Status)
	assert.Equal(t, 1, snapshot.ReservedSlots)
	assert.Equal(t, 9, snapshot.AvailableSlots)
}

func TestSnapshotOnlyTodayCountsAsReserved(t *testing.T) {
	store, _ := newReservationStore()

	// Reservation cho ngày mai không ảnh hưởng phân loại hôm nay.
	_, err := store.CreateReservation("ABC123", "2024-06-16", 7, "", "")
	require.NoError(t, err)

	snapshot := store.Snapshot()
	assert.Equal(t, domain.StatusAvailable, snapshot.Slots[6].Status)
	assert.Empty(t, snapshot.TodayReservations)
	assert.Equal(t, 0, snapshot.ReservedSlots)
}

func TestSnapshotCounters(t *testing.T) {
	store, _ := newReservationStore()

	store.RecordGateEvent(GateEntry, "")
	store.RecordGateEvent(GateEntry, "")
	store.RecordGateEvent(GateExit, "")

	snapshot := store.Snapshot()
	assert.Equal(t, 2, snapshot.EntryCount)
	assert.Equal(t, 1, snapshot.ExitCount)
	assert.Equal(t, 1, snapshot.VehiclesInside)
	assert.Equal(t, snapshot.EntryCount-snapshot.ExitCount, snapshot.VehiclesInside)
}

func TestSnapshotLastEventsCapped(t *testing.T) {
	store, _ := newReservationStore()

	for i := 0; i < 25; i++ {
		store.RecordGateEvent(GateEntry, "")
	}

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.LastEvents, 10)
	assert.Equal(t, int64(25), snapshot.LastEvents[0].ID)
}
