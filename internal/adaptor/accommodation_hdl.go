package adaptor

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccommodationHandler struct {
	service   usecase.AccommodationService
	maxUpload int64
	log       *zap.Logger
}

func NewAccommodationHandler(service usecase.AccommodationService, maxUpload int64, log *zap.Logger) *AccommodationHandler {
	return &AccommodationHandler{
		service:   service,
		maxUpload: maxUpload,
		log:       log.With(zap.String("handler", "accommodation")),
	}
}

// GetAccommodations handles GET /admin/accommodations
func (h *AccommodationHandler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AccommodationListRequest{
		PaginatedRequest: paginationFrom(query),
		Search:           optionalQuery(query, "search"),
		Type:             optionalQuery(query, "type"),
		Available:        utils.ParseBoolPtr(query.Get("available")),
	}

	accommodations, err := h.service.GetAccommodations(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get accommodations")
		return
	}

	utils.ResponseSuccess(w, "success", accommodations)
}

// GetAccommodationByID handles GET /admin/accommodations/{id}
func (h *AccommodationHandler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	acc, err := h.service.GetAccommodationByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get accommodation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", acc)
}

// GetBookings handles GET /admin/accommodations/{id}/bookings
func (h *AccommodationHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AccommodationBookingsRequest{
		Status:    optionalQuery(query, "status"),
		StartDate: optionalQuery(query, "start_date"),
		EndDate:   optionalQuery(query, "end_date"),
	}

	bookings, err := h.service.GetBookings(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get accommodation bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetStats handles GET /admin/accommodations/stats
func (h *AccommodationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get accommodation stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// CreateAccommodation handles POST /admin/accommodations
func (h *AccommodationHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAccommodationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	acc, err := h.service.CreateAccommodation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create accommodation")
		return
	}

	utils.ResponseCreated(w, "Accommodation created successfully", acc)
}

// UpdateAccommodation handles PUT /admin/accommodations/{id}
func (h *AccommodationHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAccommodationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	acc, err := h.service.UpdateAccommodation(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update accommodation")
		return
	}

	utils.ResponseSuccess(w, "Accommodation updated successfully", acc)
}

// SetAvailability handles PATCH /admin/accommodations/{id}/availability
func (h *AccommodationHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.SetAvailabilityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	acc, err := h.service.SetAvailability(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set accommodation availability")
		return
	}

	utils.ResponseSuccess(w, "Availability updated successfully", acc)
}

// DeleteAccommodation handles DELETE /admin/accommodations/{id}
func (h *AccommodationHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccommodation(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete accommodation")
		return
	}

	utils.ResponseSuccess(w, "Accommodation deleted successfully", nil)
}

// UploadImage handles POST /admin/accommodations/{id}/images. The image comes
// either as a multipart "image" file or as a JSON image_url.
func (h *AccommodationHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var (
		req  request.AccommodationImageRequest
		file *multipart.FileHeader
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUpload); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}
		_, fh, err := r.FormFile("image")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			utils.ResponseBadRequest(w, "Invalid image file", nil)
			return
		}
		file = fh
		req.ImageURL = utils.StringPtr(r.FormValue("image_url"))
		req.Title = utils.StringPtr(r.FormValue("title"))
		req.AltText = utils.StringPtr(r.FormValue("alt_text"))
		req.Description = utils.StringPtr(r.FormValue("description"))
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	image, err := h.service.UploadImage(r.Context(), chi.URLParam(r, "id"), &req, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload accommodation image")
		return
	}

	utils.ResponseCreated(w, "Image uploaded successfully", image)
}
