package domain

type SlotStatus string

const (
	StatusOccupied  SlotStatus = "occupied"
	StatusReserved  SlotStatus = "reserved"
	StatusAvailable SlotStatus = "available"
)

// SlotView - slot kèm trạng thái tổng hợp. Precedence: occupied thắng
// reserved, reserved thắng available. Một slot vừa occupied vừa có
// reservation hôm nay báo là occupied.
type SlotView struct {
	Slot
	Status      SlotStatus   `json:"status"`
	Reservation *Reservation `json:"reservation"`
}

// StatusSnapshot - view tổng hợp point-in-time của toàn bộ bãi đỗ.
// "Hôm nay" được tính tại thời điểm gọi từ clock của process.
type StatusSnapshot struct {
	EntryCount        int           `json:"entryCount"`
	ExitCount         int           `json:"exitCount"`
	VehiclesInside    int           `json:"vehiclesInside"`
	OccupiedSlots     int           `json:"occupiedSlots"`
	ReservedSlots     int           `json:"reservedSlots"`
	AvailableSlots    int           `json:"availableSlots"`
	TotalSlots        int           `json:"totalSlots"`
	Slots             []SlotView    `json:"slots"`
	TodayReservations []Reservation `json:"todayReservations"`
	LastEvents        []Event       `json:"lastEvents"`
}

// ParkingStats - payload thống kê gọn broadcast sau mỗi slot change.
type ParkingStats struct {
	OccupiedSlots  int    `json:"occupiedSlots"`
	AvailableSlots int    `json:"availableSlots"`
	TotalSlots     int    `json:"totalSlots"`
	Slots          []Slot `json:"slots"`
}

// SlotChange - delta gửi cho subscribers khi occupancy thực sự đổi.
type SlotChange struct {
	SlotID      int    `json:"slotId"`
	Occupied    bool   `json:"occupied"`
	WasOccupied bool   `json:"wasOccupied"`
	Timestamp   string `json:"timestamp"`
}
