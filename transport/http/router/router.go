package router

import (
	"github.com/go-chi/chi/v5"

	"classbook/internal/handlers/approval"
	"classbook/internal/handlers/auth"
	"classbook/internal/handlers/availability"
	"classbook/internal/handlers/booking"
	"classbook/internal/handlers/room"
	"classbook/internal/handlers/timetable"
	"classbook/internal/handlers/user"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	Booking      booking.Handler
	Availability availability.Handler
	Approval     approval.Handler
	Timetable    timetable.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Approval.Router(routerGroup)
		r.DomainHandlers.Timetable.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
