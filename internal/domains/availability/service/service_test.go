package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbook/config"
	"classbook/infras/otel/mocks"
	"classbook/internal/domains/availability/service"
	bookingMocks "classbook/internal/domains/booking/mocks"
	bookingModel "classbook/internal/domains/booking/model"
	"classbook/shared/constant"
	"classbook/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.OpenHour = 7
	cfg.Booking.CloseHour = 18

	return cfg
}

func testDate(t *testing.T) time.Time {
	t.Helper()

	date, err := time.Parse(constant.BookingDateFmt, "2025-03-31")
	assert.NoError(t, err)

	return date
}

func TestAvailabilityService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	date := testDate(t)

	t.Run("empty day reports every slot vacant", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)
		assert.False(t, res.Degraded)
		assert.Len(t, res.Slots, 11)
		assert.Equal(t, "7:00 - 8:00", res.Slots[0].TimeSlot)
		assert.Equal(t, "17:00 - 18:00", res.Slots[10].TimeSlot)

		for _, slot := range res.Slots {
			assert.Equal(t, constant.SlotStatusVacant, slot.Status)
		}
	})

	t.Run("pending booking occupies exactly its slot", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{
				{
					ID:       "b1",
					RoomNo:   "65",
					Date:     date,
					TimeSlot: "9:00 - 10:00",
					Status:   constant.BookingStatusPending,
					BookedBy: "alice",
					Reason:   "club meeting",
				},
			}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)
		assert.Len(t, res.Slots, 11)

		vacantCount := 0

		for _, slot := range res.Slots {
			if slot.TimeSlot == "9:00 - 10:00" {
				assert.Equal(t, constant.BookingStatusPending, slot.Status)
				assert.Equal(t, "alice", slot.BookedBy)
				assert.Equal(t, "club meeting", slot.Reason)

				continue
			}

			assert.Equal(t, constant.SlotStatusVacant, slot.Status)
			vacantCount++
		}

		assert.Equal(t, 10, vacantCount)
	})

	t.Run("non-grid-aligned booking occupies both touched slots", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{
				{
					ID:       "b2",
					TimeSlot: "9:30 - 10:30",
					Status:   constant.BookingStatusApproved,
				},
			}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)

		statuses := map[string]string{}
		for _, slot := range res.Slots {
			statuses[slot.TimeSlot] = slot.Status
		}

		assert.Equal(t, constant.BookingStatusApproved, statuses["9:00 - 10:00"])
		assert.Equal(t, constant.BookingStatusApproved, statuses["10:00 - 11:00"])
		assert.Equal(t, constant.SlotStatusVacant, statuses["8:00 - 9:00"])
		assert.Equal(t, constant.SlotStatusVacant, statuses["11:00 - 12:00"])
	})

	t.Run("touching boundary does not overlap", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{
				{
					ID:       "b3",
					TimeSlot: "10:00 - 11:00",
					Status:   constant.BookingStatusPending,
				},
			}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)

		statuses := map[string]string{}
		for _, slot := range res.Slots {
			statuses[slot.TimeSlot] = slot.Status
		}

		assert.Equal(t, constant.SlotStatusVacant, statuses["9:00 - 10:00"])
		assert.Equal(t, constant.BookingStatusPending, statuses["10:00 - 11:00"])
		assert.Equal(t, constant.SlotStatusVacant, statuses["11:00 - 12:00"])
	})

	t.Run("first booking wins a contested slot", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{
				{ID: "older", TimeSlot: "9:00 - 10:00", Status: constant.BookingStatusApproved, BookedBy: "alice"},
				{ID: "newer", TimeSlot: "9:00 - 10:00", Status: constant.BookingStatusPending, BookedBy: "bob"},
			}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)

		for _, slot := range res.Slots {
			if slot.TimeSlot == "9:00 - 10:00" {
				assert.Equal(t, constant.BookingStatusApproved, slot.Status)
				assert.Equal(t, "alice", slot.BookedBy)
			}
		}
	})

	t.Run("unparseable booking slot is skipped", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return([]bookingModel.Booking{
				{ID: "b4", TimeSlot: "whenever", Status: constant.BookingStatusPending},
			}, nil)

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)

		for _, slot := range res.Slots {
			assert.Equal(t, constant.SlotStatusVacant, slot.Status)
		}
	})

	t.Run("fetch failure degrades to vacant grid with warning", func(t *testing.T) {
		mockRepo.EXPECT().
			ListForRoomDate(gomock.Any(), "65", date).
			Return(nil, errors.New("connection refused"))

		res, err := svc.Resolve(context.Background(), "65", date)

		assert.NoError(t, err)
		assert.True(t, res.Degraded)
		assert.NotEmpty(t, res.Warning)
		assert.Len(t, res.Slots, 11)

		for _, slot := range res.Slots {
			assert.Equal(t, constant.SlotStatusVacant, slot.Status)
		}
	})
}

func TestAvailabilityService_SlotStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockOtel)

	date := testDate(t)

	tests := []struct {
		name       string
		timeSlot   string
		setupMock  func()
		wantStatus string
		wantErr    bool
		wantCode   int
	}{
		{
			name:     "vacant slot",
			timeSlot: "9:00 - 10:00",
			setupMock: func() {
				mockRepo.EXPECT().
					ListForRoomDate(gomock.Any(), "65", date).
					Return([]bookingModel.Booking{}, nil)
			},
			wantStatus: constant.SlotStatusVacant,
		},
		{
			name:     "occupied slot reports booking status",
			timeSlot: "9:00 - 10:00",
			setupMock: func() {
				mockRepo.EXPECT().
					ListForRoomDate(gomock.Any(), "65", date).
					Return([]bookingModel.Booking{
						{ID: "b1", TimeSlot: "9:30 - 10:30", Status: constant.BookingStatusPending},
					}, nil)
			},
			wantStatus: constant.BookingStatusPending,
		},
		{
			name:      "slot outside the grid",
			timeSlot:  "22:00 - 23:00",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:     "fetch failure is a hard error",
			timeSlot: "9:00 - 10:00",
			setupMock: func() {
				mockRepo.EXPECT().
					ListForRoomDate(gomock.Any(), "65", date).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			status, err := svc.SlotStatus(context.Background(), "65", date, tt.timeSlot)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		timeSlot  string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{name: "grid slot", timeSlot: "9:00 - 10:00", wantStart: 540, wantEnd: 600},
		{name: "zero padded", timeSlot: "09:00 - 10:00", wantStart: 540, wantEnd: 600},
		{name: "irregular minutes", timeSlot: "9:30 - 10:45", wantStart: 570, wantEnd: 645},
		{name: "no spaces", timeSlot: "9:00-10:00", wantStart: 540, wantEnd: 600},
		{name: "missing end", timeSlot: "9:00", wantErr: true},
		{name: "reversed", timeSlot: "10:00 - 9:00", wantErr: true},
		{name: "garbage", timeSlot: "whenever", wantErr: true},
		{name: "out of range hour", timeSlot: "25:00 - 26:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := service.ParseInterval(tt.timeSlot)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]int
		b    [2]int
		want bool
	}{
		{name: "identical intervals", a: [2]int{540, 600}, b: [2]int{540, 600}, want: true},
		{name: "touching boundary", a: [2]int{540, 600}, b: [2]int{600, 660}, want: false},
		{name: "partial overlap", a: [2]int{540, 600}, b: [2]int{570, 630}, want: true},
		{name: "containment", a: [2]int{540, 600}, b: [2]int{550, 560}, want: true},
		{name: "disjoint", a: [2]int{540, 600}, b: [2]int{660, 720}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
			assert.Equal(t, tt.want, service.Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]))
		})
	}
}
