package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Usable(t *testing.T) {
	now := time.Now()
	used := now.Add(-time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active and unused", Coupon{Active: true, ExpiresAt: now.Add(time.Hour)}, true},
		{"deactivated", Coupon{Active: false, ExpiresAt: now.Add(time.Hour)}, false},
		{"already used", Coupon{Active: true, ExpiresAt: now.Add(time.Hour), UsedAt: &used}, false},
		{"expired", Coupon{Active: true, ExpiresAt: now.Add(-time.Minute)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Usable(now))
		})
	}
}

func TestFindCouponOption(t *testing.T) {
	opt, ok := FindCouponOption("discount_10")
	assert.True(t, ok)
	assert.Equal(t, DiscountPercentage, opt.DiscountType)
	assert.Equal(t, 50, opt.CoinsRequired)

	_, ok = FindCouponOption("no_such_option")
	assert.False(t, ok)
}

func TestCouponCatalog_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, opt := range CouponCatalog {
		assert.False(t, seen[opt.ID], "duplicate catalog id %s", opt.ID)
		seen[opt.ID] = true
	}
}
