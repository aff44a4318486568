// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// communityRepository implements the repository.CommunityRepository interface.
type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository is the constructor for communityRepository.
func NewCommunityRepository(db *gorm.DB) repository.CommunityRepository {
	return &communityRepository{
		db: db,
	}
}

// Create persists a new community thought.
func (repo *communityRepository) Create(ctx context.Context, thought *entity.CommunityThought) error {
	thoughtM := fromCommunityThoughtDomain(thought)

	if err := repo.db.WithContext(ctx).Create(thoughtM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required thought information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create community thought")
	}

	thought.ID = thoughtM.ID
	thought.CreatedAt = thoughtM.CreatedAt

	return nil
}

// ListRecent returns the latest thoughts, newest first.
func (repo *communityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.CommunityThought, error) {
	var thoughtModels []*model.CommunityThoughtModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&thoughtModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list community thoughts")
	}

	thoughts := make([]*entity.CommunityThought, 0, len(thoughtModels))
	for _, thoughtM := range thoughtModels {
		thoughts = append(thoughts, toCommunityThoughtDomain(thoughtM))
	}

	return thoughts, nil
}

// toCommunityThoughtDomain converts a persistence model to a domain entity.
func toCommunityThoughtDomain(data *model.CommunityThoughtModel) *entity.CommunityThought {
	return &entity.CommunityThought{
		ID:        data.ID,
		Author:    data.Author,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommunityThoughtDomain converts a domain entity to a persistence model.
func fromCommunityThoughtDomain(data *entity.CommunityThought) *model.CommunityThoughtModel {
	return &model.CommunityThoughtModel{
		ID:        data.ID,
		Author:    data.Author,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
	}
}
