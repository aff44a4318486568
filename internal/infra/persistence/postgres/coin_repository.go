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

// coinRepository implements the repository.CoinRepository interface.
type coinRepository struct {
	db *gorm.DB
}

// NewCoinRepository is the constructor for coinRepository.
func NewCoinRepository(db *gorm.DB) repository.CoinRepository {
	return &coinRepository{
		db: db,
	}
}

// CreateEntry appends a ledger entry recording a balance change.
func (repo *coinRepository) CreateEntry(ctx context.Context, entry *entity.CoinEntry) error {
	entryM := fromCoinEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coin ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByUser returns the user's most recent ledger entries, newest first.
func (repo *coinRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CoinEntry, error) {
	var entryModels []*model.CoinEntryModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coin ledger entries")
	}

	entries := make([]*entity.CoinEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toCoinEntryDomain(entryM))
	}

	return entries, nil
}

// toCoinEntryDomain converts a persistence model to a domain entity.
func toCoinEntryDomain(data *model.CoinEntryModel) *entity.CoinEntry {
	return &entity.CoinEntry{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         entity.CoinEntryKind(data.Kind),
		Amount:       data.Amount,
		Description:  data.Description,
		BalanceAfter: data.BalanceAfter,
		CreatedAt:    data.CreatedAt,
	}
}

// fromCoinEntryDomain converts a domain entity to a persistence model.
func fromCoinEntryDomain(data *entity.CoinEntry) *model.CoinEntryModel {
	return &model.CoinEntryModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         string(data.Kind),
		Amount:       data.Amount,
		Description:  data.Description,
		BalanceAfter: data.BalanceAfter,
		CreatedAt:    data.CreatedAt,
	}
}
