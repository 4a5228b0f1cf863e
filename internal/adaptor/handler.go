package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth          *AuthHandler
	Accommodation *AccommodationHandler
	Package       *PackageHandler
	Catalog       *ServiceHandler
	Booking       *BookingHandler
	Coupon        *CouponHandler
	Gallery       *GalleryHandler
	BlockedDate   *BlockedDateHandler
	Dashboard     *DashboardHandler
	Lookup        *LookupHandler
	Health        *HealthHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	maxUpload := config.Upload.MaxUploadBytes()
	return &Handler{
		Auth:          NewAuthHandler(service.Auth, log),
		Accommodation: NewAccommodationHandler(service.Accommodation, maxUpload, log),
		Package:       NewPackageHandler(service.Package, log),
		Catalog:       NewServiceHandler(service.Catalog, log),
		Booking:       NewBookingHandler(service.Booking, log),
		Coupon:        NewCouponHandler(service.Coupon, log),
		Gallery:       NewGalleryHandler(service.Gallery, maxUpload, log),
		BlockedDate:   NewBlockedDateHandler(service.BlockedDate, log),
		Dashboard:     NewDashboardHandler(service.Dashboard, log),
		Lookup:        NewLookupHandler(service.Lookup, log),
		Health:        NewHealthHandler(service.Health, log),
	}
}

// handleServiceError maps usecase errors to status codes. Unexpected errors
// are logged and answered with a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, usecase.Message(err), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, usecase.Message(err))

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, usecase.Message(err), nil)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, usecase.Message(err))

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the caller may go on.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}

func paginationFrom(query url.Values) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(firstNonEmpty(query.Get("per_page"), query.Get("limit")), request.DefaultPerPage),
	}
}

// optionalQuery returns nil for a missing or blank parameter.
func optionalQuery(query url.Values, key string) *string {
	return utils.StringPtr(query.Get(key))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
