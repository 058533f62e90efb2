package approval

import (
	"fmt"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"classbook/infras/otel"
	"classbook/internal/domains/booking/service"
	"classbook/shared/constant"
	"classbook/shared/failure"
	"classbook/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/approvals", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ResolveBooking)
	})
}

// ResolveBooking applies the approver's decision from the emailed link.
// The link opens in a browser, so success and failure both render a
// small HTML page rather than JSON.
func (handler *Handler) ResolveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveBooking")
	defer scope.End()

	bookingID := r.URL.Query().Get(constant.RequestParamBookingID)
	action := r.URL.Query().Get(constant.RequestParamAction)

	if bookingID == "" || action == "" {
		err := failure.BadRequestFromString("booking_id and action query parameters are required")
		scope.TraceError(err)

		response.WithHTML(w, failure.GetCode(err), errorPage(err.Error()))

		return
	}

	res, err := handler.service.Resolve(ctx, bookingID, action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to resolve booking")

		response.WithHTML(w, failure.GetCode(err), errorPage(err.Error()))

		return
	}

	scope.AddEvent("Booking " + res.Status + " via approval link")

	response.WithHTML(w, http.StatusOK, decisionPage(res.Status, res.RoomNo, res.Date, res.TimeSlot))
}

func decisionPage(status, roomNo, date, timeSlot string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Booking %s</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding: 48px;">
  <h1>Booking %s</h1>
  <p>Room %s on %s, %s.</p>
  <p>You can close this page now.</p>
</body>
</html>`,
		html.EscapeString(status),
		html.EscapeString(status),
		html.EscapeString(roomNo),
		html.EscapeString(date),
		html.EscapeString(timeSlot),
	)
}

func errorPage(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Booking decision failed</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding: 48px;">
  <h1>Something went wrong</h1>
  <p>%s</p>
</body>
</html>`, html.EscapeString(message))
}
