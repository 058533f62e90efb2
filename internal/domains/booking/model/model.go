package model

import (
	"time"

	"classbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomNo      = "room_no"
	FieldDate        = "date"
	FieldTimeSlot    = "time_slot"
	FieldStatus      = "status"
	FieldBookedBy    = "booked_by"
	FieldReason      = "reason"
	FieldApprovedBy  = "approved_by"
	FieldIsRecurring = "is_recurring"
	FieldClass       = "class"
)

// Booking reserves one hourly slot of a room for a day. Absence of a row
// means the slot is vacant; there is no stored "vacant" status.
type Booking struct {
	ID          string    `db:"id"`
	RoomNo      string    `db:"room_no"`
	Date        time.Time `db:"date"`
	TimeSlot    string    `db:"time_slot"`
	Status      string    `db:"status"`
	BookedBy    string    `db:"booked_by"`
	Reason      string    `db:"reason"`
	ApprovedBy  string    `db:"approved_by"`
	IsRecurring bool      `db:"is_recurring"`
	Class       string    `db:"class"`
	model.Metadata
}
