package adaptor

import (
	"net/http"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlockedDateHandler struct {
	service usecase.BlockedDateService
	log     *zap.Logger
}

func NewBlockedDateHandler(service usecase.BlockedDateService, log *zap.Logger) *BlockedDateHandler {
	return &BlockedDateHandler{
		service: service,
		log:     log.With(zap.String("handler", "blocked_date")),
	}
}

// GetBlockedDates handles GET /admin/blocked-dates
func (h *BlockedDateHandler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.GetBlockedDates(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get blocked dates")
		return
	}

	utils.ResponseSuccess(w, "success", dates)
}

// BlockDates handles POST /admin/blocked-dates
func (h *BlockedDateHandler) BlockDates(w http.ResponseWriter, r *http.Request) {
	var req request.BlockDatesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.BlockDates(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "block dates")
		return
	}

	utils.ResponseCreated(w, "Dates blocked successfully", result)
}

// UpdateReason handles PUT /admin/blocked-dates/{id}
func (h *BlockedDateHandler) UpdateReason(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBlockedDateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.UpdateReason(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		handleServiceError(w, h.log, err, "update blocked date")
		return
	}

	utils.ResponseSuccess(w, "Blocked date updated successfully", nil)
}

// DeleteBlockedDate handles DELETE /admin/blocked-dates/{id}
func (h *BlockedDateHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBlockedDate(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete blocked date")
		return
	}

	utils.ResponseSuccess(w, "Blocked date removed successfully", nil)
}

// UnblockDate handles DELETE /admin/blocked-dates/date/{date}
func (h *BlockedDateHandler) UnblockDate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.UnblockDate(r.Context(), chi.URLParam(r, "date")); err != nil {
		handleServiceError(w, h.log, err, "unblock date")
		return
	}

	utils.ResponseSuccess(w, "Date unblocked successfully", nil)
}
