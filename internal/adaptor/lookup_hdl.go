package adaptor

import (
	"net/http"

	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type LookupHandler struct {
	service usecase.LookupService
	log     *zap.Logger
}

func NewLookupHandler(service usecase.LookupService, log *zap.Logger) *LookupHandler {
	return &LookupHandler{
		service: service,
		log:     log.With(zap.String("handler", "lookup")),
	}
}

// GetMealPlans handles GET /admin/meal-plans
func (h *LookupHandler) GetMealPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.GetMealPlans(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get meal plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// GetActivities handles GET /admin/activities
func (h *LookupHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.GetActivities(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}
