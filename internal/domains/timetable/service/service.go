package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"classbook/infras/otel"
	availabilityService "classbook/internal/domains/availability/service"
	bookingModel "classbook/internal/domains/booking/model"
	bookingRepo "classbook/internal/domains/booking/repository"
	"classbook/internal/domains/timetable/model/dto"
	"classbook/shared/constant"
	"classbook/shared/failure"
)

type Timetable interface {
	Import(ctx context.Context, req dto.ImportTimetableRequest) (dto.ImportTimetableResponse, error)
}

type serviceImpl struct {
	repo         bookingRepo.Booking
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(repo bookingRepo.Booking, availability availabilityService.Availability, otel otel.Otel) Timetable {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		otel:         otel,
	}
}

// Import bulk-loads recurring class schedule rows as approved bookings.
// Rows that fail validation or land on a taken slot are reported back
// individually; the remaining rows are inserted in one batch.
func (s *serviceImpl) Import(ctx context.Context, req dto.ImportTimetableRequest) (res dto.ImportTimetableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportTimetable")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	res.Rejected = []dto.RejectedRow{}

	accepted := make([]bookingModel.Booking, 0, len(req.Rows))
	seen := make(map[string]bool, len(req.Rows))

	for i, row := range req.Rows {
		booking, err := row.ToModel(user)
		if err != nil {
			res.Rejected = append(res.Rejected, rejected(i, row, "invalid date, expected YYYY-MM-DD"))

			continue
		}

		key := fmt.Sprintf("%s|%s|%s", row.RoomNo, row.Date, row.TimeSlot)
		if seen[key] {
			res.Rejected = append(res.Rejected, rejected(i, row, "duplicate row in batch"))

			continue
		}

		status, err := s.availability.SlotStatus(ctx, row.RoomNo, booking.Date, row.TimeSlot)
		if err != nil {
			if failure.GetCode(err) == http.StatusBadRequest {
				res.Rejected = append(res.Rejected, rejected(i, row, "time slot outside the booking grid"))

				continue
			}

			log.Error().Err(err).Msg("failed to check slot status for timetable row")

			return res, fmt.Errorf("failed to check slot status: %w", err)
		}

		if status != constant.SlotStatusVacant {
			res.Rejected = append(res.Rejected, rejected(i, row, "slot already taken"))

			continue
		}

		seen[key] = true

		accepted = append(accepted, booking)
	}

	if len(accepted) == 0 {
		return res, nil
	}

	if err = s.repo.InsertBulk(ctx, accepted); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("one or more timetable rows were booked concurrently") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert timetable rows")

		return res, err
	}

	res.Imported = len(accepted)

	return res, nil
}

func rejected(index int, row dto.TimetableRow, reason string) dto.RejectedRow {
	return dto.RejectedRow{
		Index:    index,
		RoomNo:   row.RoomNo,
		Date:     row.Date,
		TimeSlot: row.TimeSlot,
		Reason:   reason,
	}
}
