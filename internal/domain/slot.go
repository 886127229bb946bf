package domain

import "time"

// Slot - một chỗ đỗ vật lý, đánh số cố định 1..SLOTS_COUNT.
// Occupancy được ghi bởi sensor/gate mutators; các field reserved* là
// overlay do reservation ledger ghi đè.
type Slot struct {
	ID        int        `json:"id"`
	Occupied  bool       `json:"occupied"`
	UpdatedAt *time.Time `json:"updatedAt"`

	Reserved     bool   `json:"reserved"`
	ReservedBy   string `json:"reservedBy,omitempty"`
	ReservedDate string `json:"reservedDate,omitempty"`
	ReservedTime string `json:"reservedTime,omitempty"`
}

// SlotUpdate - kết quả của một lần ghi occupancy.
type SlotUpdate struct {
	Slot        Slot       `json:"slot"`
	WasOccupied bool       `json:"wasOccupied"`
	Changed     bool       `json:"changed"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// GateCounters - bộ đếm cổng vào/ra. VehiclesInside là giá trị dẫn xuất,
// có thể âm hoặc vượt số chỗ vì sensor cổng và sensor chỗ đỗ độc lập nhau.
type GateCounters struct {
	EntryCount     int `json:"entryCount"`
	ExitCount      int `json:"exitCount"`
	VehiclesInside int `json:"vehiclesInside"`
}
