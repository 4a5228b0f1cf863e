package adaptor

import (
	"net/http"

	"resort-admin/internal/dto/request"
	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CouponHandler struct {
	service usecase.CouponService
	log     *zap.Logger
}

func NewCouponHandler(service usecase.CouponService, log *zap.Logger) *CouponHandler {
	return &CouponHandler{
		service: service,
		log:     log.With(zap.String("handler", "coupon")),
	}
}

// GetCoupons handles GET /admin/coupons
func (h *CouponHandler) GetCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.service.GetCoupons(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get coupons")
		return
	}

	utils.ResponseSuccess(w, "success", coupons)
}

// GetCouponByID handles GET /admin/coupons/{id}
func (h *CouponHandler) GetCouponByID(w http.ResponseWriter, r *http.Request) {
	coupon, err := h.service.GetCouponByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get coupon by ID")
		return
	}

	utils.ResponseSuccess(w, "success", coupon)
}

// CreateCoupon handles POST /admin/coupons
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCouponRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	coupon, err := h.service.CreateCoupon(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create coupon")
		return
	}

	utils.ResponseCreated(w, "Coupon created successfully", coupon)
}

// UpdateCoupon handles PUT /admin/coupons/{id}
func (h *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCouponRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	coupon, err := h.service.UpdateCoupon(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon updated successfully", coupon)
}

// ToggleCoupon handles PATCH /admin/coupons/{id}/toggle
func (h *CouponHandler) ToggleCoupon(w http.ResponseWriter, r *http.Request) {
	toggled, err := h.service.ToggleCoupon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon status updated", toggled)
}

// DeleteCoupon handles DELETE /admin/coupons/{id}
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon deleted successfully", nil)
}

// ValidateCoupon handles POST /admin/coupons/validate
func (h *CouponHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CouponCodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.ValidateCoupon(r.Context(), req.Code, req.Amount)
	if err != nil {
		handleServiceError(w, h.log, err, "validate coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon is valid", result)
}

// RedeemCoupon handles POST /admin/coupons/redeem
func (h *CouponHandler) RedeemCoupon(w http.ResponseWriter, r *http.Request) {
	var req request.CouponCodeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.service.RedeemCoupon(r.Context(), req.Code); err != nil {
		handleServiceError(w, h.log, err, "redeem coupon")
		return
	}

	utils.ResponseSuccess(w, "Coupon redeemed successfully", nil)
}
