package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", bookingHandler.GetBookings)
		r.Post("/", bookingHandler.CreateBooking)

		// availability check before any booking is written
		r.Post("/check-availability", bookingHandler.CheckAvailability)

		r.Get("/{id}", bookingHandler.GetBookingByID)
		r.Put("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)
		r.Post("/{id}/payments", bookingHandler.AddPayment)
	})
}
