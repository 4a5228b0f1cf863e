package response

import (
	"time"

	"resort-admin/internal/data/entity"
	"resort-admin/pkg/utils"
)

type CouponResponse struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	DisplayName   string              `json:"display_name"`
	DiscountValue float64             `json:"discount_value"`
	DiscountType  entity.DiscountType `json:"discount_type"`
	MinAmount     float64             `json:"min_amount"`
	MaxDiscount   *float64            `json:"max_discount,omitempty"`
	UsageLimit    *int                `json:"usage_limit,omitempty"`
	UsedCount     int                 `json:"used_count"`
	Active        bool                `json:"active"`
	Expired       bool                `json:"expired"`
	ExpiryDate    string              `json:"expiry_date"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type CouponValidationResponse struct {
	ID             string              `json:"id"`
	Code           string              `json:"code"`
	DisplayName    string              `json:"display_name"`
	DiscountValue  float64             `json:"discount_value"`
	DiscountType   entity.DiscountType `json:"discount_type"`
	MinAmount      float64             `json:"min_amount"`
	MaxDiscount    *float64            `json:"max_discount,omitempty"`
	DiscountAmount *float64            `json:"discount_amount,omitempty"`
	FinalAmount    *float64            `json:"final_amount,omitempty"`
}

// Helper converters
func CouponToResponse(c *entity.Coupon, today time.Time) CouponResponse {
	return CouponResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		DisplayName:   c.DisplayName(),
		DiscountValue: c.DiscountValue,
		DiscountType:  c.DiscountType,
		MinAmount:     c.MinAmount,
		MaxDiscount:   c.MaxDiscount,
		UsageLimit:    c.UsageLimit,
		UsedCount:     c.UsedCount,
		Active:        c.Active,
		Expired:       c.Expired(today),
		ExpiryDate:    c.ExpiryDate.Format(utils.DateLayout),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func CouponToValidationResponse(c *entity.Coupon, amount *float64) CouponValidationResponse {
	resp := CouponValidationResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		DisplayName:   c.DisplayName(),
		DiscountValue: c.DiscountValue,
		DiscountType:  c.DiscountType,
		MinAmount:     c.MinAmount,
		MaxDiscount:   c.MaxDiscount,
	}

	if amount != nil {
		discount := c.Discount(*amount)
		final := *amount - discount
		resp.DiscountAmount = &discount
		resp.FinalAmount = &final
	}

	return resp
}
