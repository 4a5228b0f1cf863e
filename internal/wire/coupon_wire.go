package wire

import (
	"resort-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCoupon(r chi.Router, couponHandler *adaptor.CouponHandler) {
	r.Route("/coupons", func(r chi.Router) {
		r.Get("/", couponHandler.GetCoupons)
		r.Post("/", couponHandler.CreateCoupon)

		// validate never consumes the coupon; redeem does
		r.Post("/validate", couponHandler.ValidateCoupon)
		r.Post("/redeem", couponHandler.RedeemCoupon)

		r.Get("/{id}", couponHandler.GetCouponByID)
		r.Put("/{id}", couponHandler.UpdateCoupon)
		r.Patch("/{id}/toggle", couponHandler.ToggleCoupon)
		r.Delete("/{id}", couponHandler.DeleteCoupon)
	})
}
