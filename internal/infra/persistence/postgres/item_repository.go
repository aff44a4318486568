// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// FindByID retrieves a single item by its unique ID.
func (repo *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// Create persists a new listing.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update persists changes to an existing listing.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", item.ID).
		Select(
			"title", "description", "size", "color", "brand",
			"points", "status", "flagged", "images", "category", "condition",
		).
		Updates(itemM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// UpdateStatus changes only the lifecycle status of an item.
func (repo *itemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// Browse returns a filtered, sorted, paginated set of items.
func (repo *itemRepository) Browse(ctx context.Context, filter repository.ItemFilter, sort repository.ItemSort, page, limit int) (*repository.ItemPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.ItemModel{})
	query = applyItemFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	var itemModels []*model.ItemModel
	if err := query.
		Order(buildItemOrder(sort)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to browse items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return &repository.ItemPage{
		Items:      items,
		TotalItems: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// DistinctCategories lists every category currently in use.
func (repo *itemRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// DistinctConditions lists every condition currently in use.
func (repo *itemRepository) DistinctConditions(ctx context.Context) ([]string, error) {
	var conditions []string

	if err := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Distinct("condition").
		Order("condition").
		Pluck("condition", &conditions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list conditions")
	}

	return conditions, nil
}

// Stats aggregates the overview counters.
func (repo *itemRepository) Stats(ctx context.Context) (*repository.ItemStats, error) {
	stats := &repository.ItemStats{}

	counters := []struct {
		dest  *int64
		scope func(*gorm.DB) *gorm.DB
	}{
		{&stats.TotalItems, func(db *gorm.DB) *gorm.DB { return db }},
		{&stats.SwapsCompleted, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", string(entity.ItemStatusSwapped))
		}},
		{&stats.ItemsAwaiting, func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", string(entity.ItemStatusPending))
		}},
		{&stats.FlaggedItems, func(db *gorm.DB) *gorm.DB {
			return db.Where("flagged = ?", true)
		}},
	}

	for _, counter := range counters {
		query := counter.scope(repo.db.WithContext(ctx).Model(&model.ItemModel{}))
		if err := query.Count(counter.dest).Error; err != nil {
			return nil, errors.Wrap(err, "failed to aggregate item stats")
		}
	}

	return stats, nil
}

// Featured returns up to limit recent approved items for the overview page.
func (repo *itemRepository) Featured(ctx context.Context, limit int) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ItemStatusApproved)).
		Order("created_at DESC").
		Limit(limit).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

func applyItemFilter(query *gorm.DB, filter repository.ItemFilter) *gorm.DB {
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", string(filter.Condition))
	}
	if filter.MinPoints != nil {
		query = query.Where("points >= ?", *filter.MinPoints)
	}
	if filter.MaxPoints != nil {
		query = query.Where("points <= ?", *filter.MaxPoints)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Flagged != nil {
		query = query.Where("flagged = ?", *filter.Flagged)
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR brand ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	return query
}

// buildItemOrder whitelists sortable columns so client input never reaches
// the ORDER BY clause directly.
func buildItemOrder(sort repository.ItemSort) string {
	column := "created_at"
	switch sort.Field {
	case "points":
		column = "points"
	case "title":
		column = "title"
	}

	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	return column + " " + direction
}

// toItemDomain converts a persistence model to a domain entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	return &entity.Item{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Size:        data.Size,
		Color:       data.Color,
		Brand:       data.Brand,
		Points:      data.Points,
		Status:      entity.ItemStatus(data.Status),
		Flagged:     data.Flagged,
		Images:      data.Images,
		Category:    data.Category,
		Condition:   entity.ItemCondition(data.Condition),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromItemDomain converts a domain entity to a persistence model.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Size:        data.Size,
		Color:       data.Color,
		Brand:       data.Brand,
		Points:      data.Points,
		Status:      string(data.Status),
		Flagged:     data.Flagged,
		Images:      data.Images,
		Category:    data.Category,
		Condition:   string(data.Condition),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
