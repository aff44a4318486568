// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tradeRepository implements the repository.TradeRepository interface.
type tradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository is the constructor for tradeRepository.
func NewTradeRepository(db *gorm.DB) repository.TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

// FindByID retrieves a single trade by its unique ID.
func (repo *tradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trade, error) {
	var tradeM model.TradeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tradeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTradeNotFound
		}

		return nil, errors.Wrap(err, "failed to find trade by ID")
	}

	return toTradeDomain(&tradeM), nil
}

// Create persists a new trade.
func (repo *tradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	tradeM := fromTradeDomain(trade)

	if err := repo.db.WithContext(ctx).Create(tradeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid item or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create trade")
	}

	trade.ID = tradeM.ID
	trade.CreatedAt = tradeM.CreatedAt
	trade.UpdatedAt = tradeM.UpdatedAt

	return nil
}

// Update persists changes to an existing trade.
func (repo *tradeRepository) Update(ctx context.Context, trade *entity.Trade) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TradeModel{}).
		Where("id = ?", trade.ID).
		Updates(map[string]any{
			"status": string(trade.Status),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update trade")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTradeNotFound
	}

	return nil
}

// FindPendingBySeller lists pending trades against the seller's items with
// item and buyer summaries populated.
func (repo *tradeRepository) FindPendingBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Trade, error) {
	var tradeModels []*model.TradeModel

	if err := repo.db.WithContext(ctx).
		Preload("Item").
		Preload("Buyer").
		Where("seller_id = ? AND status = ?", sellerID, string(entity.TradeStatusPending)).
		Order("created_at DESC").
		Find(&tradeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending trades by seller")
	}

	return toTradeDomainSlice(tradeModels), nil
}

// FindByBuyer lists all trades the buyer initiated with item and seller
// summaries populated.
func (repo *tradeRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Trade, error) {
	var tradeModels []*model.TradeModel

	if err := repo.db.WithContext(ctx).
		Preload("Item").
		Preload("Seller").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&tradeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trades by buyer")
	}

	return toTradeDomainSlice(tradeModels), nil
}

// FindAcceptedItemsByBuyer lists the items a buyer acquired through accepted
// trades, newest first.
func (repo *tradeRepository) FindAcceptedItemsByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Item, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.TradeModel{}).
		Where("buyer_id = ? AND status IN ?", buyerID, []string{
			string(entity.TradeStatusAccepted),
			string(entity.TradeStatusCompleted),
		})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count accepted trades by buyer")
	}

	var tradeModels []*model.TradeModel
	if err := base.
		Preload("Item").
		Order("updated_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&tradeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find accepted trades by buyer")
	}

	items := make([]*entity.Item, 0, len(tradeModels))
	for _, tradeM := range tradeModels {
		if tradeM.Item == nil {
			continue
		}
		items = append(items, toItemDomain(tradeM.Item))
	}

	return items, total, nil
}

// ListRecent returns the latest trades across all users, newest first.
func (repo *tradeRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Trade, error) {
	var tradeModels []*model.TradeModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tradeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent trades")
	}

	return toTradeDomainSlice(tradeModels), nil
}

func toTradeDomainSlice(tradeModels []*model.TradeModel) []*entity.Trade {
	trades := make([]*entity.Trade, 0, len(tradeModels))
	for _, tradeM := range tradeModels {
		trades = append(trades, toTradeDomain(tradeM))
	}

	return trades
}

// toTradeDomain converts a persistence model to a domain entity.
func toTradeDomain(data *model.TradeModel) *entity.Trade {
	trade := &entity.Trade{
		ID:          data.ID,
		ItemID:      data.ItemID,
		BuyerID:     data.BuyerID,
		SellerID:    data.SellerID,
		OfferAmount: data.OfferAmount,
		Kind:        entity.TradeKind(data.Kind),
		Status:      entity.TradeStatus(data.Status),
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Item != nil {
		trade.Item = toItemDomain(data.Item)
	}
	if data.Buyer != nil {
		trade.Buyer = toUserDomain(data.Buyer)
	}
	if data.Seller != nil {
		trade.Seller = toUserDomain(data.Seller)
	}

	return trade
}

// fromTradeDomain converts a domain entity to a persistence model.
func fromTradeDomain(data *entity.Trade) *model.TradeModel {
	return &model.TradeModel{
		ID:          data.ID,
		ItemID:      data.ItemID,
		BuyerID:     data.BuyerID,
		SellerID:    data.SellerID,
		OfferAmount: data.OfferAmount,
		Kind:        string(data.Kind),
		Status:      string(data.Status),
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
