package domain

import "time"

type EventType string

const (
	EventEntry                EventType = "ENTRY"
	EventExit                 EventType = "EXIT"
	EventSlotUpdate           EventType = "SLOT_UPDATE"
	EventCameraImage          EventType = "CAMERA_IMAGE"
	EventReservationCreated   EventType = "RESERVATION_CREATED"
	EventReservationCancelled EventType = "RESERVATION_CANCELLED"
)

// Event - một entry trong log sự kiện bounded (100 entry, mới nhất trước).
// Data là payload tùy theo loại event, chỉ để hiển thị/debug.
type Event struct {
	ID        int64     `json:"id"`
	Type      EventType `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Payload shapes cho từng loại event, giữ nguyên format wire của hệ thống cũ.

type GateEventData struct {
	VehicleID string `json:"vehicleId,omitempty"`
	Count     int    `json:"count"`
}

type SlotUpdateData struct {
	SlotID        int  `json:"slotId"`
	Occupied      bool `json:"occupied"`
	PreviousState bool `json:"previousState"`
}

type CameraImageData struct {
	CamID    string `json:"camId"`
	Filename string `json:"filename"`
}

type ReservationEventData struct {
	Plate  string `json:"plate"`
	SlotID int    `json:"slotId"`
	Date   string `json:"date"`
}
