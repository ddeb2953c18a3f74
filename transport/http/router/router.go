package router

import (
	"servicehub/internal/handlers/auth"
	"servicehub/internal/handlers/booking"
	"servicehub/internal/handlers/completion"
	"servicehub/internal/handlers/health"
	"servicehub/internal/handlers/payment"
	"servicehub/internal/handlers/provider"
	"servicehub/internal/handlers/user"
	"servicehub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	User       user.Handler
	Provider   provider.Handler
	Booking    booking.Handler
	Payment    payment.Handler
	Completion completion.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)

		routerGroup.Route("/bookings", func(bookings chi.Router) {
			r.DomainHandlers.Booking.Router(bookings)
			r.DomainHandlers.Completion.Router(bookings)
			r.DomainHandlers.Payment.BookingRouter(bookings)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
