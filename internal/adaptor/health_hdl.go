package adaptor

import (
	"net/http"

	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service usecase.HealthService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Live handles GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Check handles GET /admin/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	health := h.service.Check(r.Context())
	if health.Status != "ok" {
		utils.ResponseServiceUnavailable(w, "Service degraded", health)
		return
	}

	utils.ResponseSuccess(w, "Service is healthy", health)
}
