package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"classbook/internal/domains/booking/model"
	"classbook/shared/constant"
	gModel "classbook/shared/model"
	"classbook/shared/timezone"
)

// TimetableRow is one recurring class schedule entry. Rows land in the
// bookings table pre-approved so the availability grid shows them as taken.
type TimetableRow struct {
	RoomNo   string `json:"room_no"   validate:"required,max=20"`
	Date     string `json:"date"      validate:"required"`
	TimeSlot string `json:"time_slot" validate:"required,max=20"`
	Class    string `json:"class"     validate:"required,max=100"`
	BookedBy string `json:"booked_by" validate:"omitempty,max=100"`
}

func (r *TimetableRow) ToModel(user string) (model.Booking, error) {
	date, err := time.Parse(constant.BookingDateFmt, r.Date)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse date: %w", err)
	}

	bookedBy := r.BookedBy
	if bookedBy == constant.Empty {
		bookedBy = user
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomNo:      r.RoomNo,
		Date:        date,
		TimeSlot:    r.TimeSlot,
		Status:      constant.BookingStatusApproved,
		BookedBy:    bookedBy,
		Reason:      r.Class,
		ApprovedBy:  user,
		IsRecurring: true,
		Class:       r.Class,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type ImportTimetableRequest struct {
	Rows []TimetableRow `json:"rows" validate:"required,min=1,dive"`
}

type RejectedRow struct {
	Index    int    `json:"index"`
	RoomNo   string `json:"room_no"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Reason   string `json:"reason"`
}

type ImportTimetableResponse struct {
	Imported int           `json:"imported"`
	Rejected []RejectedRow `json:"rejected"`
}
