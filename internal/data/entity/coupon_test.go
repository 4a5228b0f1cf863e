package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func activeCoupon() *Coupon {
	return &Coupon{
		Code:          "SUMMER10",
		DiscountValue: 10,
		DiscountType:  DiscountPercentage,
		MinAmount:     500,
		Active:        true,
		ExpiryDate:    day("2024-06-30"),
	}
}

func TestCoupon_CheckRedeemable(t *testing.T) {
	today := day("2024-06-01")

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, activeCoupon().CheckRedeemable(today, ptr(800.0)))
	})

	t.Run("expires today is still valid", func(t *testing.T) {
		c := activeCoupon()
		c.ExpiryDate = today
		assert.NoError(t, c.CheckRedeemable(today.Add(15*time.Hour), nil))
	})

	t.Run("expired", func(t *testing.T) {
		c := activeCoupon()
		c.ExpiryDate = day("2024-05-31")
		assert.ErrorIs(t, c.CheckRedeemable(today, nil), ErrCouponInvalid)
	})

	t.Run("inactive", func(t *testing.T) {
		c := activeCoupon()
		c.Active = false
		assert.ErrorIs(t, c.CheckRedeemable(today, nil), ErrCouponInvalid)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c := activeCoupon()
		c.UsageLimit = ptr(5)
		c.UsedCount = 5
		assert.ErrorIs(t, c.CheckRedeemable(today, nil), ErrCouponLimitExceeded)
	})

	t.Run("below minimum amount", func(t *testing.T) {
		err := activeCoupon().CheckRedeemable(today, ptr(100.0))
		assert.ErrorIs(t, err, ErrCouponMinAmount)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("no amount skips minimum check", func(t *testing.T) {
		assert.NoError(t, activeCoupon().CheckRedeemable(today, nil))
	})
}

func TestCoupon_Discount(t *testing.T) {
	c := activeCoupon()
	assert.Equal(t, 100.0, c.Discount(1000))

	c.MaxDiscount = ptr(50.0)
	assert.Equal(t, 50.0, c.Discount(1000))

	fixed := &Coupon{DiscountType: DiscountFixed, DiscountValue: 300}
	assert.Equal(t, 300.0, fixed.Discount(1000))
	assert.Equal(t, 200.0, fixed.Discount(200))
	assert.Equal(t, 0.0, fixed.Discount(0))
}

func TestCoupon_DisplayName(t *testing.T) {
	assert.Equal(t, "10% OFF (Min: ₹500)", activeCoupon().DisplayName())

	fixed := &Coupon{DiscountType: DiscountFixed, DiscountValue: 500}
	assert.Equal(t, "500 Rs OFF", fixed.DisplayName())
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "WELCOME", NormalizeCouponCode("  welcome "))
}
