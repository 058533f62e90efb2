package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"classbook/internal/domains/room/model"
	"classbook/shared"
	gDto "classbook/shared/dto"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNo     string                `json:"room_no"     validate:"required,max=20"`
	Name       string                `json:"name"        validate:"required,max=100"`
	Kind       string                `json:"kind"        validate:"required,oneof=classroom lab"`
	FloorLabel string                `json:"floor_label" validate:"omitempty,max=50"`
	Capacity   int                   `json:"capacity"    validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNo:     c.RoomNo,
		Name:       c.Name,
		Kind:       c.Kind,
		FloorLabel: c.FloorLabel,
		Capacity:   c.Capacity,
		Image:      imageURL,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name       string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Kind       string                `db:"kind"        json:"kind"        validate:"omitempty,oneof=classroom lab"`
	FloorLabel string                `db:"floor_label" json:"floor_label" validate:"omitempty,max=50"`
	Capacity   *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Image      *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile  multipart.File        `json:"-"`
	Active     *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomNo     string `json:"room_no"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	FloorLabel string `json:"floor_label"`
	Capacity   int    `json:"capacity"`
	Image      string `json:"image"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Name = model.Name
	r.Kind = model.Kind
	r.FloorLabel = model.FloorLabel
	r.Capacity = model.Capacity
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
