package usecase

import (
	"context"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogCoupon is one redemption option annotated for the caller.
type CatalogCoupon struct {
	entity.CouponOption
	CanRedeem bool `json:"canRedeem"`
}

// CoinUsecase defines the interface for the reward coin and coupon operations.
type CoinUsecase interface {
	// Balance returns the caller's current coin balance.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)

	// Transactions returns the caller's latest ledger entries, newest first.
	Transactions(ctx context.Context, userID uuid.UUID) ([]*entity.CoinEntry, error)

	// AvailableCoupons returns the static catalog annotated with whether the
	// caller's balance covers each option.
	AvailableCoupons(ctx context.Context, userID uuid.UUID) ([]CatalogCoupon, error)

	// CreateCoupon exchanges coins for a catalog option: balance check,
	// deduction, coupon creation and ledger entry in one transaction.
	CreateCoupon(ctx context.Context, userID uuid.UUID, optionID string) (*entity.Coupon, error)

	// RedemptionCoupons returns the caller's active, unused, unexpired coupons.
	RedemptionCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error)

	// RedeemCoupon consumes a coupon the caller owns.
	RedeemCoupon(ctx context.Context, userID, couponID uuid.UUID) (*entity.Coupon, error)

	// CouponQR renders a PNG QR code for a coupon the caller owns.
	CouponQR(ctx context.Context, userID, couponID uuid.UUID) ([]byte, error)
}
