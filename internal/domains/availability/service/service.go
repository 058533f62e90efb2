package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"classbook/config"
	"classbook/infras/otel"
	"classbook/internal/domains/availability/model/dto"
	bookingModel "classbook/internal/domains/booking/model"
	bookingRepo "classbook/internal/domains/booking/repository"
	"classbook/shared/constant"
	"classbook/shared/failure"
)

const degradedWarning = "booking data could not be loaded; slots shown as vacant may be taken"

type Availability interface {
	Resolve(ctx context.Context, roomNo string, date time.Time) (dto.GetAvailabilityResponse, error)
	SlotStatus(ctx context.Context, roomNo string, date time.Time, timeSlot string) (string, error)
}

type serviceImpl struct {
	repo bookingRepo.Booking
	cfg  *config.Config
	otel otel.Otel
}

func New(repo bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Resolve maps the day's bookings for a room onto the fixed hourly grid.
// When the store read fails the response degrades to an all-vacant grid
// flagged Degraded instead of failing the whole request.
func (s *serviceImpl) Resolve(ctx context.Context, roomNo string, date time.Time) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.RoomNo = roomNo
	res.Date = date.Format(constant.BookingDateFmt)

	slots := s.slotGrid()

	bookings, err := s.repo.ListForRoomDate(ctx, roomNo, date)
	if err != nil {
		log.Error().Err(err).Str("roomNo", roomNo).Str("date", res.Date).Msg("failed to fetch bookings, degrading to vacant grid")

		res.Degraded = true
		res.Warning = degradedWarning
		res.Slots = vacantSlots(slots)

		return res, nil
	}

	occupied := bookingIntervals(bookings)

	res.Slots = make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		res.Slots[i] = slotOccupancy(slot, occupied)
	}

	return res, nil
}

// SlotStatus re-derives the status of a single grid slot. Unlike Resolve,
// a store failure here is a hard error: callers use this as the guard
// before inserting a booking.
func (s *serviceImpl) SlotStatus(ctx context.Context, roomNo string, date time.Time, timeSlot string) (status string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	slot, found := s.gridSlot(timeSlot)
	if !found {
		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("time slot %q is not in the booking grid", timeSlot)) //nolint:wrapcheck
	}

	bookings, err := s.repo.ListForRoomDate(ctx, roomNo, date)
	if err != nil {
		log.Error().Err(err).Str("roomNo", roomNo).Msg("failed to fetch bookings for slot check")

		return constant.Empty, fmt.Errorf("failed to fetch bookings for slot check: %w", err)
	}

	occupancy := slotOccupancy(slot, bookingIntervals(bookings))

	return occupancy.Status, nil
}

// slot is one grid entry with its half-open interval in minutes since
// midnight.
type slot struct {
	label string
	start int
	end   int
}

type bookingInterval struct {
	start   int
	end     int
	booking bookingModel.Booking
}

func (s *serviceImpl) slotGrid() []slot {
	open := s.cfg.Booking.OpenHour
	close := s.cfg.Booking.CloseHour

	slots := make([]slot, 0, close-open)
	for hour := open; hour < close; hour++ {
		slots = append(slots, slot{
			label: SlotLabel(hour),
			start: hour * 60,
			end:   (hour + 1) * 60,
		})
	}

	return slots
}

func (s *serviceImpl) gridSlot(label string) (slot, bool) {
	for _, gridSlot := range s.slotGrid() {
		if gridSlot.label == label {
			return gridSlot, true
		}
	}

	return slot{}, false
}

// SlotLabel renders the canonical grid label for an hour, without zero
// padding: "9:00 - 10:00".
func SlotLabel(hour int) string {
	return fmt.Sprintf("%d:00 - %d:00", hour, hour+1)
}

func bookingIntervals(bookings []bookingModel.Booking) []bookingInterval {
	intervals := make([]bookingInterval, 0, len(bookings))

	for _, booking := range bookings {
		start, end, err := ParseInterval(booking.TimeSlot)
		if err != nil {
			log.Warn().Err(err).Str("bookingID", booking.ID).Str("timeSlot", booking.TimeSlot).Msg("skipping booking with unparseable time slot")

			continue
		}

		intervals = append(intervals, bookingInterval{start: start, end: end, booking: booking})
	}

	return intervals
}

// slotOccupancy returns the first overlapping booking's status, or vacant.
// Intervals arrive in creation order, so the oldest booking wins a
// contested slot.
func slotOccupancy(slot slot, intervals []bookingInterval) dto.SlotResponse {
	for _, interval := range intervals {
		if Overlaps(slot.start, slot.end, interval.start, interval.end) {
			return dto.SlotResponse{
				TimeSlot:    slot.label,
				Status:      interval.booking.Status,
				BookedBy:    interval.booking.BookedBy,
				Reason:      interval.booking.Reason,
				Class:       interval.booking.Class,
				IsRecurring: interval.booking.IsRecurring,
			}
		}
	}

	return dto.SlotResponse{
		TimeSlot: slot.label,
		Status:   constant.SlotStatusVacant,
	}
}

// Overlaps reports whether two half-open minute intervals intersect.
// Touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// ParseInterval converts a "H:MM - H:MM" slot string into half-open
// minutes since midnight.
func ParseInterval(timeSlot string) (start, end int, err error) {
	parts := strings.Split(timeSlot, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time slot %q", timeSlot)
	}

	start, err = parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}

	end, err = parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}

	if start >= end {
		return 0, 0, fmt.Errorf("time slot %q does not move forward", timeSlot)
	}

	return start, end, nil
}

func parseClock(clock string) (int, error) {
	hourMinute := strings.Split(clock, ":")
	if len(hourMinute) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}

	hour, err := strconv.Atoi(hourMinute[0])
	if err != nil {
		return 0, fmt.Errorf("malformed hour in %q", clock)
	}

	minute, err := strconv.Atoi(hourMinute[1])
	if err != nil {
		return 0, fmt.Errorf("malformed minute in %q", clock)
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}

	return hour*60 + minute, nil
}

func vacantSlots(slots []slot) []dto.SlotResponse {
	res := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		res[i] = dto.SlotResponse{
			TimeSlot: slot.label,
			Status:   constant.SlotStatusVacant,
		}
	}

	return res
}
