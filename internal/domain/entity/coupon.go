package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType distinguishes percentage coupons from fixed-amount coupons.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a discount voucher a user bought with coins. It is consumed at
// most once; UsedAt is the consumption marker.
type Coupon struct {
	ID            uuid.UUID
	UserID        uuid.UUID    // The user who redeemed coins for this coupon.
	Title         string       // Display title, e.g. "10% Off Next Purchase".
	Description   string       // Display description.
	DiscountType  DiscountType // percentage or fixed.
	DiscountValue int          // Percent for percentage coupons, coins for fixed.
	MinPurchase   int          // Minimum purchase amount the coupon applies to.
	CoinsRequired int          // Coins that were spent to create the coupon.
	Active        bool         // False once deactivated by the expiry sweep.
	ExpiresAt     time.Time    // When the coupon stops being redeemable.
	UsedAt        *time.Time   // Set when the coupon is consumed. Nil while unused.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Usable reports whether the coupon can still be consumed at the given time.
func (c *Coupon) Usable(now time.Time) bool {
	return c.Active && c.UsedAt == nil && now.Before(c.ExpiresAt)
}

// CouponOption is one entry of the static redemption catalog: what a user can
// exchange coins for.
type CouponOption struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int          `json:"discountValue"`
	MinPurchase   int          `json:"minPurchaseAmount"`
	CoinsRequired int          `json:"coinsRequired"`
	ValidForDays  int          `json:"validFor"`
}

// CouponCatalog is the fixed set of redemption options offered to every user.
var CouponCatalog = []CouponOption{
	{
		ID:            "discount_10",
		Title:         "10% Off Next Purchase",
		Description:   "Get 10% off your next purchase",
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		MinPurchase:   500,
		CoinsRequired: 50,
		ValidForDays:  30,
	},
	{
		ID:            "discount_20",
		Title:         "20% Off Next Purchase",
		Description:   "Get 20% off your next purchase",
		DiscountType:  DiscountPercentage,
		DiscountValue: 20,
		MinPurchase:   1000,
		CoinsRequired: 100,
		ValidForDays:  30,
	},
	{
		ID:            "fixed_100",
		Title:         "100 Coins Off Next Purchase",
		Description:   "Get 100 coins off your next purchase",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		MinPurchase:   500,
		CoinsRequired: 75,
		ValidForDays:  30,
	},
	{
		ID:            "fixed_200",
		Title:         "200 Coins Off Next Purchase",
		Description:   "Get 200 coins off your next purchase",
		DiscountType:  DiscountFixed,
		DiscountValue: 200,
		MinPurchase:   1000,
		CoinsRequired: 150,
		ValidForDays:  30,
	},
}

// FindCouponOption looks up a catalog option by its id.
func FindCouponOption(id string) (CouponOption, bool) {
	for _, opt := range CouponCatalog {
		if opt.ID == id {
			return opt, true
		}
	}

	return CouponOption{}, false
}
