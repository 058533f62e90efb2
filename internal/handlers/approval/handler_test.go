package approval_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "classbook/infras/otel/mocks"
	"classbook/internal/domains/booking/model/dto"
	serviceMocks "classbook/internal/domains/booking/service/mocks"
	"classbook/internal/handlers/approval"
	"classbook/shared/constant"
	"classbook/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := approval.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestApprovalHandler_ResolveBooking(t *testing.T) {
	t.Run("resolves a booking and renders a decision page", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Resolve(gomock.Any(), "booking-1", constant.BookingStatusApproved).
			Return(dto.ResolveBookingResponse{
				ID:         "booking-1",
				RoomNo:     "R101",
				Date:       "2025-03-31",
				TimeSlot:   "9:00 - 10:00",
				Status:     constant.BookingStatusApproved,
				ApprovedBy: "Head Admin",
			}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/approvals?booking_id=booking-1&action=approved", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypeHTML, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Contains(t, rec.Body.String(), "approved")
		assert.Contains(t, rec.Body.String(), "R101")
	})

	t.Run("rejects a request with no booking id before calling the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/approvals?action=approved", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "booking_id and action query parameters are required")
	})

	t.Run("rejects a request with no action before calling the service", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/approvals?booking_id=booking-1", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "booking_id and action query parameters are required")
	})

	t.Run("renders an error page for an unknown booking", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Resolve(gomock.Any(), "does-not-exist", constant.BookingStatusRejected).
			Return(dto.ResolveBookingResponse{}, failure.NotFound("booking not found"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/approvals?booking_id=does-not-exist&action=rejected", nil)

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "booking not found")
	})
}
