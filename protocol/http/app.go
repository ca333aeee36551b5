package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DARK-V-98/flycargolanka-sub000/config"
	"github.com/DARK-V-98/flycargolanka-sub000/database"
	"github.com/DARK-V-98/flycargolanka-sub000/middleware/authentication"
	"github.com/DARK-V-98/flycargolanka-sub000/service"
)

type App struct {
	Config   config.Config
	Store    *database.Store
	Payments *service.PayhereClient
	Bookings *service.BookingService
}

func NewApp(cfg config.Config, store *database.Store) *App {
	return &App{
		Config:   cfg,
		Store:    store,
		Payments: service.NewPayhereClient(cfg),
		Bookings: service.NewBookingService(store),
	}
}

func (a *App) RegisterRoutes(r chi.Router) {
	r.Get("/", a.home)
	r.Get("/health", a.health)

	r.Post("/rates/quote", a.quote)
	r.Get("/offers", a.activeOffers)

	r.Post("/bookings", a.createBooking)
	r.Get("/bookings/{bookingID}", a.getBooking)
	r.Post("/bookings/{bookingID}/checkout", a.checkout)
	r.Post("/bookings/{bookingID}/nic", a.uploadNIC)

	r.Post("/payments/notify", a.paymentNotify)
	r.Get("/payments/return", a.paymentReturn)
	r.Get("/payments/cancel", a.paymentCancel)

	r.Route("/admin", func(admin chi.Router) {
		admin.Post("/login", a.adminLogin)

		admin.Group(func(guarded chi.Router) {
			guarded.Use(authentication.Middleware(a.Config.AdminJWTSecret))

			guarded.Get("/rates", a.adminRatesPage)
			guarded.Get("/rates/countries", a.adminListCountries)
			guarded.Post("/rates/countries", a.adminSaveCountry)
			guarded.Get("/rates/countries/{country}/bands", a.adminListBands)
			guarded.Post("/rates/countries/{country}/bands", a.adminSaveBand)
			guarded.Delete("/rates/countries/{country}/bands/{bandID}", a.adminDeleteBand)

			guarded.Get("/bookings", a.adminListBookings)
			guarded.Post("/bookings/{bookingID}/status", a.adminUpdateOrderStatus)

			guarded.Get("/nic", a.adminListNIC)
			guarded.Post("/nic/{verificationID}/approve", a.adminApproveNIC)
			guarded.Post("/nic/{verificationID}/reject", a.adminRejectNIC)

			guarded.Get("/offers", a.adminListOffers)
			guarded.Post("/offers", a.adminSaveOffer)
			guarded.Delete("/offers/{offerID}", a.adminDeleteOffer)

			guarded.Handle(
				"/files/nic_documents/*",
				http.StripPrefix(
					"/admin/files/nic_documents/",
					http.FileServer(http.Dir(service.NICDocumentDir())),
				),
			)
		})
	})
}
