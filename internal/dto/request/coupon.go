package request

type CreateCouponRequest struct {
	Code          string   `json:"code" validate:"required,max=50"`
	DiscountValue float64  `json:"discount_value" validate:"gt=0"`
	DiscountType  string   `json:"discount_type" validate:"omitempty,oneof=percentage fixed"`
	MinAmount     *float64 `json:"min_amount,omitempty" validate:"omitempty,gte=0"`
	MaxDiscount   *float64 `json:"max_discount,omitempty" validate:"omitempty,gte=0"`
	UsageLimit    *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	Active        *bool    `json:"active,omitempty"`
	ExpiryDate    string   `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

type UpdateCouponRequest struct {
	Code          *string  `json:"code,omitempty" validate:"omitempty,min=1,max=50"`
	DiscountValue *float64 `json:"discount_value,omitempty" validate:"omitempty,gt=0"`
	DiscountType  *string  `json:"discount_type,omitempty" validate:"omitempty,oneof=percentage fixed"`
	MinAmount     *float64 `json:"min_amount,omitempty" validate:"omitempty,gte=0"`
	MaxDiscount   *float64 `json:"max_discount,omitempty" validate:"omitempty,gte=0"`
	UsageLimit    *int     `json:"usage_limit,omitempty" validate:"omitempty,min=1"`
	Active        *bool    `json:"active,omitempty"`
	ExpiryDate    *string  `json:"expiry_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CouponCodeRequest is the body of the validate and redeem endpoints.
type CouponCodeRequest struct {
	Code   string   `json:"code" validate:"required,max=50"`
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
}
