package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAccommodation(r chi.Router, accommodationHandler *adaptor.AccommodationHandler) {
	r.Route("/accommodations", func(r chi.Router) {
		r.Get("/", accommodationHandler.GetAccommodations)
		r.Post("/", accommodationHandler.CreateAccommodation)
		r.Get("/stats", accommodationHandler.GetStats)

		r.Get("/{id}", accommodationHandler.GetAccommodationByID)
		r.Put("/{id}", accommodationHandler.UpdateAccommodation)
		r.Delete("/{id}", accommodationHandler.DeleteAccommodation)
		r.Patch("/{id}/availability", accommodationHandler.SetAvailability)
		r.Get("/{id}/bookings", accommodationHandler.GetBookings)
		r.Post("/{id}/images", accommodationHandler.UploadImage)
	})
}
