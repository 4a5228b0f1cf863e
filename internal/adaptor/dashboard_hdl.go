package adaptor

import (
	"net/http"

	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetStats handles GET /admin/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetQuickStats handles GET /admin/dashboard/quick-stats
func (h *DashboardHandler) GetQuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetQuickStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get quick stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetRecentBookings handles GET /admin/dashboard/recent-bookings
func (h *DashboardHandler) GetRecentBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetRecentBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get recent bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetRevenueTrend handles GET /admin/dashboard/revenue-trend
func (h *DashboardHandler) GetRevenueTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.service.GetRevenueTrend(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get revenue trend")
		return
	}

	utils.ResponseSuccess(w, "success", trend)
}
