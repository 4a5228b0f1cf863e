package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, lookupHandler *adaptor.LookupHandler) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", dashboardHandler.GetStats)
		r.Get("/quick-stats", dashboardHandler.GetQuickStats)
		r.Get("/recent-bookings", dashboardHandler.GetRecentBookings)
		r.Get("/revenue-trend", dashboardHandler.GetRevenueTrend)
	})

	// reference lists for the booking form
	r.Get("/meal-plans", lookupHandler.GetMealPlans)
	r.Get("/activities", lookupHandler.GetActivities)
}
