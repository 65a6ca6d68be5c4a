package router

import (
	"hotelbook/internal/handlers/amenity"
	"hotelbook/internal/handlers/auth"
	"hotelbook/internal/handlers/booking"
	"hotelbook/internal/handlers/hotel"
	"hotelbook/internal/handlers/navigation"
	"hotelbook/internal/handlers/report"
	"hotelbook/internal/handlers/review"
	"hotelbook/internal/handlers/room"
	"hotelbook/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Navigation navigation.Handler
	User       user.Handler
	Hotel      hotel.Handler
	Room       room.Handler
	Amenity    amenity.Handler
	Booking    booking.Handler
	Review     review.Handler
	Report     report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Navigation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Amenity.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.User.AdminRouter(adminGroup)
			r.DomainHandlers.Hotel.AdminRouter(adminGroup)
			r.DomainHandlers.Room.AdminRouter(adminGroup)
			r.DomainHandlers.Amenity.AdminRouter(adminGroup)
			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Review.AdminRouter(adminGroup)
			r.DomainHandlers.Report.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
