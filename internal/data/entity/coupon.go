package entity

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var (
	ErrCouponInvalid       = errors.New("invalid or expired coupon code")
	ErrCouponLimitExceeded = errors.New("coupon usage limit exceeded")
	ErrCouponMinAmount     = errors.New("minimum order amount not reached")
)

type Coupon struct {
	Base
	Code          string       `db:"code"`
	DiscountValue float64      `db:"discount_value"`
	DiscountType  DiscountType `db:"discount_type"`
	MinAmount     float64      `db:"min_amount"`
	MaxDiscount   *float64     `db:"max_discount"`
	UsageLimit    *int         `db:"usage_limit"`
	UsedCount     int          `db:"used_count"`
	Active        bool         `db:"active"`
	ExpiryDate    time.Time    `db:"expiry_date"`
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) Expired(today time.Time) bool {
	return DateOnly(c.ExpiryDate).Before(DateOnly(today))
}

func (c *Coupon) LimitReached() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}

// CheckRedeemable applies the checks in order: active and unexpired, usage
// limit, then minimum amount when an amount is given.
func (c *Coupon) CheckRedeemable(today time.Time, amount *float64) error {
	if !c.Active || c.Expired(today) {
		return ErrCouponInvalid
	}
	if c.LimitReached() {
		return ErrCouponLimitExceeded
	}
	if amount != nil && *amount < c.MinAmount {
		return fmt.Errorf("%w: minimum order amount of %s required", ErrCouponMinAmount, formatAmount(c.MinAmount))
	}
	return nil
}

// Discount is the amount taken off. Percentages respect MaxDiscount and the
// result never exceeds amount.
func (c *Coupon) Discount(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	var d float64
	switch c.DiscountType {
	case DiscountFixed:
		d = c.DiscountValue
	default:
		d = amount * c.DiscountValue / 100
		if c.MaxDiscount != nil && *c.MaxDiscount > 0 && d > *c.MaxDiscount {
			d = *c.MaxDiscount
		}
	}
	d = math.Round(d*100) / 100
	return math.Min(d, amount)
}

// DisplayName renders e.g. "10% OFF (Min: ₹500)" or "500 Rs OFF".
func (c *Coupon) DisplayName() string {
	unit := "%"
	if c.DiscountType == DiscountFixed {
		unit = " Rs"
	}
	name := formatAmount(c.DiscountValue) + unit + " OFF"
	if c.MinAmount > 0 {
		name += " (Min: ₹" + formatAmount(c.MinAmount) + ")"
	}
	return name
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
