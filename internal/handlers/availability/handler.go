package availability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"classbook/infras/otel"
	"classbook/internal/domains/availability/service"
	"classbook/shared/constant"
	"classbook/shared/failure"
	"classbook/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/{roomNo}/slots", handler.GetSlots)
}

// GetSlots returns the hourly slot grid of a room for one day. When the
// booking data cannot be loaded the grid comes back all vacant with a
// degraded flag instead of an error.
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	roomNo := chi.URLParam(r, constant.RequestParamRoomNo)

	dateParam := r.URL.Query().Get(constant.RequestParamDate)

	date, err := time.Parse(constant.BookingDateFmt, dateParam)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", dateParam).Msg("invalid date parameter")

		response.WithError(w, failure.InvalidDateParam)

		return
	}

	slots, err := handler.service.Resolve(ctx, roomNo, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability resolved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}
