package timetable

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"classbook/infras/otel"
	"classbook/internal/domains/timetable/model/dto"
	"classbook/internal/domains/timetable/service"
	"classbook/shared/constant"
	"classbook/shared/validator"
	"classbook/transport/http/response"
)

type Handler struct {
	service service.Timetable
	otel    otel.Otel
}

func New(service service.Timetable, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/timetable", func(routerGroup chi.Router) {
		routerGroup.Post("/import", handler.ImportTimetable)
	})
}

// ImportTimetable bulk-loads recurring class schedule rows. The response
// lists how many rows were imported and which ones were rejected.
func (handler *Handler) ImportTimetable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ImportTimetable")
	defer scope.End()

	req := dto.ImportTimetableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Import(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import timetable")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timetable imported successfully")

	response.WithJSON(w, http.StatusOK, res)
}
