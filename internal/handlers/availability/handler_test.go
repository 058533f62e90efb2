package availability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "classbook/infras/otel/mocks"
	availabilityMocks "classbook/internal/domains/availability/mocks"
	"classbook/internal/domains/availability/model/dto"
	"classbook/internal/handlers/availability"
	"classbook/shared/constant"
)

func newRouter(t *testing.T) (*chi.Mux, *availabilityMocks.MockAvailability) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := availabilityMocks.NewMockAvailability(ctrl)

	handler := availability.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestAvailabilityHandler_GetSlots(t *testing.T) {
	t.Run("returns the slot grid for a valid date", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Resolve(gomock.Any(), "R101", gomock.Any()).
			DoAndReturn(func(_ context.Context, roomNo string, date time.Time) (dto.GetAvailabilityResponse, error) {
				assert.Equal(t, "2025-03-31", date.Format(constant.BookingDateFmt))

				return dto.GetAvailabilityResponse{
					RoomNo: roomNo,
					Date:   "2025-03-31",
					Slots: []dto.SlotResponse{
						{TimeSlot: "9:00 - 10:00", Status: constant.SlotStatusVacant},
					},
				}, nil
			})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rooms/R101/slots?date=2025-03-31", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"room_no":"R101"`)
		assert.Contains(t, rec.Body.String(), `"9:00 - 10:00"`)
	})

	t.Run("rejects a missing date before calling the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rooms/R101/slots", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid date parameter")
	})

	t.Run("rejects a malformed date before calling the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/rooms/R101/slots?date=31-03-2025", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid date parameter")
	})
}
