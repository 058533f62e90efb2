package model

import "classbook/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNo     = "room_no"
	FieldName       = "name"
	FieldKind       = "kind"
	FieldFloorLabel = "floor_label"
	FieldCapacity   = "capacity"
	FieldImage      = "image"
	FieldActive     = "active"
)

const (
	KindClassroom = "classroom"
	KindLab       = "lab"
)

// Room is one bookable space on the floor plan. RoomNo is the key the
// booking grid refers to.
type Room struct {
	ID         string `db:"id"`
	RoomNo     string `db:"room_no"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	FloorLabel string `db:"floor_label"`
	Capacity   int    `db:"capacity"`
	Image      string `db:"image"`
	Active     bool   `db:"active"`
	model.Metadata
}
