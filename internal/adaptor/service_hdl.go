package adaptor

import (
	"net/http"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServiceHandler serves the resort's bookable extras (spa, tours, transfers).
type ServiceHandler struct {
	service usecase.ServiceCatalog
	log     *zap.Logger
}

func NewServiceHandler(service usecase.ServiceCatalog, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "service")),
	}
}

// GetServices handles GET /admin/services
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ServiceListRequest{
		Search:       optionalQuery(query, "search"),
		PriceRange:   optionalQuery(query, "priceRange"),
		Availability: optionalQuery(query, "availability"),
		SortBy:       query.Get("sortBy"),
		SortOrder:    query.Get("sortOrder"),
	}

	services, err := h.service.GetServices(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServiceByID handles GET /admin/services/{id}
func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service.GetServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get service by ID")
		return
	}

	utils.ResponseSuccess(w, "success", svc)
}

// CreateService handles POST /admin/services
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.CreateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service")
		return
	}

	utils.ResponseCreated(w, "Service created successfully", svc)
}

// UpdateService handles PUT /admin/services/{id}
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.service.UpdateService(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "Service updated successfully", svc)
}

// DeleteService handles DELETE /admin/services/{id}
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted successfully", nil)
}
