package domain

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation - đặt chỗ theo ngày. Tối đa một reservation active cho mỗi
// cặp (slotId, date); nhiều reservation cho cùng slot ở các ngày khác nhau
// là hợp lệ. Date dùng format YYYY-MM-DD.
type Reservation struct {
	ID          int64             `json:"id"`
	Plate       string            `json:"plate"`
	Date        string            `json:"date"`
	SlotID      int               `json:"slotId"`
	StartTime   string            `json:"startTime"`
	EndTime     string            `json:"endTime"`
	CreatedAt   time.Time         `json:"createdAt"`
	Status      ReservationStatus `json:"status"`
	CancelledAt *time.Time        `json:"cancelledAt,omitempty"`
}

// SlotAvailability - kết quả check disponibilidad cho một slot vào một ngày.
type SlotAvailability struct {
	SlotID      int          `json:"slotId"`
	Available   bool         `json:"available"`
	Reservation *Reservation `json:"reservation"`
	Occupied    bool         `json:"occupied"`
}
