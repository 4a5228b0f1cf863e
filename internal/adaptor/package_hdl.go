package adaptor

import (
	"net/http"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// GetPackages handles GET /admin/packages
func (h *PackageHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PackageListRequest{
		Search:     optionalQuery(query, "search"),
		PriceRange: optionalQuery(query, "priceRange"),
		Duration:   optionalQuery(query, "duration"),
		Guests:     optionalQuery(query, "guests"),
		Active:     utils.ParseBoolPtr(query.Get("active")),
	}

	packages, err := h.service.GetPackages(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackageByID handles GET /admin/packages/{id}
func (h *PackageHandler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackageByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get package by ID")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// GetStats handles GET /admin/packages/stats
func (h *PackageHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get package stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// CreatePackage handles POST /admin/packages
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created successfully", pkg)
}

// UpdatePackage handles PUT /admin/packages/{id}
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePackageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "Package updated successfully", pkg)
}

// TogglePackage handles PATCH /admin/packages/{id}/toggle
func (h *PackageHandler) TogglePackage(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.service.TogglePackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle package")
		return
	}

	utils.ResponseSuccess(w, "Package status updated", toggled)
}

// DeletePackage handles DELETE /admin/packages/{id}
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted successfully", nil)
}
