package state

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("không tìm thấy bản ghi")
var ErrOutOfRange = errors.New("slot id nằm ngoài phạm vi")
var ErrInvalidInput = errors.New("dữ liệu không hợp lệ")
var ErrMissingField = errors.New("thiếu trường bắt buộc")
var ErrPastDate = errors.New("không thể đặt chỗ cho ngày trong quá khứ")
var ErrConflict = errors.New("slot đã được đặt cho ngày này")

// ConflictError bọc ErrConflict và mang theo biển số đang giữ chỗ, để
// boundary báo cho client biết ai đang conflict.
type ConflictError struct {
	SlotID int
	Date   string
	Plate  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %d đã được đặt cho ngày %s bởi %s", e.SlotID, e.Date, e.Plate)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
