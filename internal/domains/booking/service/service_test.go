package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/config"
	kafkaMocks "classbook/infras/kafka/mocks"
	mailerMocks "classbook/infras/mailer/mocks"
	"classbook/infras/otel/mocks"
	availabilityMocks "classbook/internal/domains/availability/mocks"
	bookingMocks "classbook/internal/domains/booking/mocks"
	"classbook/internal/domains/booking/model"
	"classbook/internal/domains/booking/model/dto"
	"classbook/internal/domains/booking/service"
	userMocks "classbook/internal/domains/user/mocks"
	"classbook/shared/constant"
	"classbook/shared/failure"
	"classbook/shared/timezone"
)

type serviceMocks struct {
	repo         *bookingMocks.MockBooking
	userRepo     *userMocks.MockUser
	availability *availabilityMocks.MockAvailability
	mailer       *mailerMocks.MockMailer
	events       *kafkaMocks.MockClient
}

func newService(t *testing.T) (service.Booking, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:         bookingMocks.NewMockBooking(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		mailer:       mailerMocks.NewMockMailer(ctrl),
		events:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.OpenHour = 8
	cfg.Booking.CloseHour = 18
	cfg.Booking.ApproverName = "Ms. Admin"
	cfg.Booking.ApproverEmail = "admin@school.example"

	svc := service.New(m.repo, m.userRepo, m.availability, m.mailer, m.events, cfg, mocks.NewOtel())

	return svc, m
}

func requesterContext(username string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, username)
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomNo:   "65",
		Date:     "2025-03-31",
		TimeSlot: "9:00 - 10:00",
		Reason:   "club meeting",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().
			SlotStatus(gomock.Any(), "65", gomock.Any(), "9:00 - 10:00").
			Return(constant.SlotStatusVacant, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.NotEmpty(t, booking.ID)
				assert.Equal(t, constant.BookingStatusPending, booking.Status)
				assert.Equal(t, "alice", booking.BookedBy)

				return nil
			})
		m.mailer.EXPECT().
			SendBookingApprovalRequest(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Create(requesterContext("alice"), validReq)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusPending, res.Booking.Status)
		assert.Equal(t, "65", res.Booking.RoomNo)
		assert.Empty(t, res.Warning)
	})

	t.Run("unknown requester identity", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(requesterContext("ghost"), validReq)

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		req := validReq
		req.Date = "31-03-2025"

		_, err := svc.Create(requesterContext("alice"), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("occupied slot rejected without insert", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().
			SlotStatus(gomock.Any(), "65", gomock.Any(), "9:00 - 10:00").
			Return(constant.BookingStatusPending, nil)

		_, err := svc.Create(requesterContext("alice"), validReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("lost insert race surfaces as conflict", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().
			SlotStatus(gomock.Any(), "65", gomock.Any(), "9:00 - 10:00").
			Return(constant.SlotStatusVacant, nil)
		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (booking): %w", &pq.Error{Code: "23505"}))

		_, err := svc.Create(requesterContext("alice"), validReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("notification failure keeps the booking", func(t *testing.T) {
		svc, m := newService(t)

		m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.availability.EXPECT().
			SlotStatus(gomock.Any(), "65", gomock.Any(), "9:00 - 10:00").
			Return(constant.SlotStatusVacant, nil)
		m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().
			SendBookingApprovalRequest(gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: connection refused"))

		res, err := svc.Create(requesterContext("alice"), validReq)

		assert.ErrorIs(t, err, service.ErrNotificationFailed)
		assert.Equal(t, constant.BookingStatusPending, res.Booking.Status)
		assert.NotEmpty(t, res.Warning)
	})
}

func TestBookingService_Resolve(t *testing.T) {
	pendingBooking := func() model.Booking {
		return model.Booking{
			ID:       "b1",
			RoomNo:   "65",
			Date:     timezone.Now(),
			TimeSlot: "9:00 - 10:00",
			Status:   constant.BookingStatusPending,
			BookedBy: "alice",
		}
	}

	t.Run("invalid decision", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Resolve(context.Background(), "b1", "maybe")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Resolve(context.Background(), "does-not-exist", constant.BookingStatusApproved)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("approve pending booking", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, constant.BookingStatusApproved, fields[model.FieldStatus])
				assert.Equal(t, "Ms. Admin", fields[model.FieldApprovedBy])

				return nil
			})

		res, err := svc.Resolve(context.Background(), "b1", constant.BookingStatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusApproved, res.Status)
		assert.Equal(t, "Ms. Admin", res.ApprovedBy)
	})

	t.Run("repeated identical decision is idempotent", func(t *testing.T) {
		svc, m := newService(t)

		resolved := pendingBooking()
		resolved.Status = constant.BookingStatusApproved
		resolved.ApprovedBy = "Ms. Admin"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resolved, nil)

		res, err := svc.Resolve(context.Background(), "b1", constant.BookingStatusApproved)

		assert.NoError(t, err)
		assert.Equal(t, constant.BookingStatusApproved, res.Status)
	})

	t.Run("conflicting decision on resolved booking", func(t *testing.T) {
		svc, m := newService(t)

		resolved := pendingBooking()
		resolved.Status = constant.BookingStatusApproved

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(resolved, nil)

		_, err := svc.Resolve(context.Background(), "b1", constant.BookingStatusRejected)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("update failure", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingBooking(), nil)
		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Resolve(context.Background(), "b1", constant.BookingStatusRejected)

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, m := newService(t)

		booking := model.Booking{ID: "b1", RoomNo: "65", Date: timezone.Now(), Status: constant.BookingStatusPending}
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		res, err := svc.Get(context.Background(), "b1")

		assert.NoError(t, err)
		assert.Equal(t, "b1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
