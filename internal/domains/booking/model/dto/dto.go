package dto

import (
	"time"

	"github.com/google/uuid"

	"classbook/internal/domains/booking/model"
	"classbook/shared"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

type CreateBookingRequest struct {
	RoomNo      string `json:"room_no"      validate:"required,max=20"`
	Date        string `json:"date"         validate:"required"`
	TimeSlot    string `json:"time_slot"    validate:"required,max=30"`
	Reason      string `json:"reason"       validate:"required,max=500"`
	Class       string `json:"class"        validate:"omitempty,max=100"`
	IsRecurring bool   `json:"is_recurring" validate:"omitempty"`
}

// ToModel builds a pending booking owned by the authenticated requester.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	date, err := time.Parse(constant.BookingDateFmt, c.Date)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomNo:      c.RoomNo,
		Date:        date,
		TimeSlot:    c.TimeSlot,
		Status:      constant.BookingStatusPending,
		BookedBy:    user,
		Reason:      c.Reason,
		IsRecurring: c.IsRecurring,
		Class:       c.Class,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomNo      string `json:"room_no"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Status      string `json:"status"`
	BookedBy    string `json:"booked_by"`
	Reason      string `json:"reason"`
	ApprovedBy  string `json:"approved_by,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
	Class       string `json:"class,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Date = model.Date.Format(constant.BookingDateFmt)
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
	r.BookedBy = model.BookedBy
	r.Reason = model.Reason
	r.ApprovedBy = model.ApprovedBy
	r.IsRecurring = model.IsRecurring
	r.Class = model.Class
	r.Metadata.FromModel(model.Metadata)
}

// CreateBookingResponse is the created booking plus an optional warning,
// set when the approval email could not be dispatched.
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

type ResolveBookingResponse struct {
	ID         string `json:"id"`
	RoomNo     string `json:"room_no"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
	Status     string `json:"status"`
	ApprovedBy string `json:"approved_by"`
}

func (r *ResolveBookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Date = model.Date.Format(constant.BookingDateFmt)
	r.TimeSlot = model.TimeSlot
	r.Status = model.Status
	r.ApprovedBy = model.ApprovedBy
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
