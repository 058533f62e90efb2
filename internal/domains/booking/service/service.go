package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"classbook/config"
	"classbook/infras/kafka"
	"classbook/infras/mailer"
	"classbook/infras/otel"
	availabilitySvc "classbook/internal/domains/availability/service"
	"classbook/internal/domains/booking/model"
	"classbook/internal/domains/booking/model/dto"
	"classbook/internal/domains/booking/repository"
	userModel "classbook/internal/domains/user/model"
	userRepo "classbook/internal/domains/user/repository"
	"classbook/shared"
	"classbook/shared/constant"
	gDto "classbook/shared/dto"
	"classbook/shared/failure"
	"classbook/shared/timezone"
)

const (
	eventBookingCreated  = "booking.created"
	eventBookingResolved = "booking.resolved"

	notificationWarning = "booking created but the approval email could not be sent; contact the approver directly"
)

// ErrNotificationFailed reports a booking that was persisted even though
// the approval email did not go out. The booking stays pending.
var ErrNotificationFailed = errors.New("booking created but approval notification failed")

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Resolve(ctx context.Context, bookingID, decision string) (dto.ResolveBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	userRepo     userRepo.User
	availability availabilitySvc.Availability
	mailer       mailer.Mailer
	events       kafka.Client
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	userRepo userRepo.User,
	availability availabilitySvc.Availability,
	mailer mailer.Mailer,
	events kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		userRepo:     userRepo,
		availability: availability,
		mailer:       mailer,
		events:       events,
		cfg:          cfg,
		otel:         otel,
	}
}

// Create inserts a pending booking for the authenticated requester and
// asks the approver to resolve it by email. The vacancy pre-check is best
// effort; the unique constraint on (room_no, date, time_slot) is the real
// guard against a double-booking race and surfaces as a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	known, err := s.userRepo.Exist(ctx, usernameFilter(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to check requester identity")

		return res, fmt.Errorf("failed to check requester identity: %w", err)
	}

	if !known {
		return res, failure.Unauthorized("unknown requester identity") //nolint:wrapcheck
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.InvalidDateParam //nolint:wrapcheck
	}

	status, err := s.availability.SlotStatus(ctx, booking.RoomNo, booking.Date, booking.TimeSlot)
	if err != nil {
		return res, err
	}

	if status != constant.SlotStatusVacant {
		return res, failure.Conflict(fmt.Sprintf("time slot %q is already %s", booking.TimeSlot, status)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(fmt.Sprintf("time slot %q was booked by someone else", booking.TimeSlot)) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.Booking.FromModel(booking)

	s.publishEvent(ctx, eventBookingCreated, booking)

	notifyErr := s.mailer.SendBookingApprovalRequest(ctx, mailer.ApprovalRequestMail{
		To:           s.cfg.Booking.ApproverEmail,
		ApproverName: s.cfg.Booking.ApproverName,
		BookingID:    booking.ID,
		RoomNo:       booking.RoomNo,
		Date:         booking.Date.Format(constant.BookingDateFmt),
		TimeSlot:     booking.TimeSlot,
		BookedBy:     booking.BookedBy,
		Reason:       booking.Reason,
	})
	if notifyErr != nil {
		log.Error().Err(notifyErr).Str("bookingID", booking.ID).Msg("approval notification failed, booking kept pending")

		res.Warning = notificationWarning

		return res, ErrNotificationFailed
	}

	return res, nil
}

// Resolve flips a pending booking to its terminal state. Repeating the
// same decision is idempotent; a different decision on an already
// resolved booking is a conflict.
func (s *serviceImpl) Resolve(ctx context.Context, bookingID, decision string) (res dto.ResolveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if decision != constant.BookingStatusApproved && decision != constant.BookingStatusRejected {
		return res, failure.InvalidActionParam //nolint:wrapcheck
	}

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.Status != constant.BookingStatusPending {
		if booking.Status == decision {
			res.FromModel(booking)

			return res, nil
		}

		return res, failure.Conflict(fmt.Sprintf("booking already %s", booking.Status)) //nolint:wrapcheck
	}

	approver := s.cfg.Booking.ApproverName

	updatedFields := map[string]any{
		model.FieldStatus:        decision,
		model.FieldApprovedBy:    approver,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: approver,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to resolve booking")

		return res, fmt.Errorf("failed to resolve booking: %w", err)
	}

	booking.Status = decision
	booking.ApprovedBy = approver

	res.FromModel(booking)

	s.publishEvent(ctx, eventBookingResolved, booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, key string, booking model.Booking) {
	if !s.cfg.External.Kafka.Enable {
		return
	}

	topic := s.cfg.External.Kafka.Topic

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.events.SendMessages(c, topic, kafka.Message{Key: key, Value: booking}); err != nil {
			log.Error().Err(err).Str("event", key).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func usernameFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    userModel.TableName,
			},
		},
	}
}
