package repository

import (
	"context"
	"errors"
	"time"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is a domain-specific error returned when a coupon is not found.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines the standard operations for coupon persistence.
type CouponRepository interface {
	// FindByID retrieves a single coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// Create persists a new coupon entity.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update modifies an existing coupon entity.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// FindUsableByUser lists the user's unused, unexpired coupons, newest first.
	FindUsableByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Coupon, error)

	// DeactivateExpired marks every active coupon whose expiry has passed as
	// inactive and returns the number of rows affected.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
