// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindByID retrieves a single coupon by its unique ID.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by ID")
	}

	return toCouponDomain(&couponM), nil
}

// Create persists a new coupon.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Update persists changes to an existing coupon.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", coupon.ID).
		Updates(map[string]any{
			"active":  coupon.Active,
			"used_at": coupon.UsedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coupon")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// FindUsableByUser lists the user's unused, unexpired coupons, newest first.
func (repo *couponRepository) FindUsableByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.Coupon, error) {
	var couponModels []*model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND active = ? AND used_at IS NULL AND expires_at > ?", userID, true, now).
		Order("created_at DESC").
		Find(&couponModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list usable coupons")
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for _, couponM := range couponModels {
		coupons = append(coupons, toCouponDomain(couponM))
	}

	return coupons, nil
}

// DeactivateExpired marks every active coupon whose expiry has passed as inactive.
func (repo *couponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("active = ? AND expires_at <= ?", true, now).
		Update("active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate expired coupons")
	}

	return result.RowsAffected, nil
}

// toCouponDomain converts a persistence model to a domain entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:            data.ID,
		UserID:        data.UserID,
		Title:         data.Title,
		Description:   data.Description,
		DiscountType:  entity.DiscountType(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinPurchase:   data.MinPurchase,
		CoinsRequired: data.CoinsRequired,
		Active:        data.Active,
		ExpiresAt:     data.ExpiresAt,
		UsedAt:        data.UsedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCouponDomain converts a domain entity to a persistence model.
func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	return &model.CouponModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Title:         data.Title,
		Description:   data.Description,
		DiscountType:  string(data.DiscountType),
		DiscountValue: data.DiscountValue,
		MinPurchase:   data.MinPurchase,
		CoinsRequired: data.CoinsRequired,
		Active:        data.Active,
		ExpiresAt:     data.ExpiresAt,
		UsedAt:        data.UsedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
