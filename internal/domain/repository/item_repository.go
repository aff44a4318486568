package repository

import (
	"context"
	"errors"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is a domain-specific error returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter captures the browse query: every field is optional and combined
// with AND; Search matches title, description and brand case-insensitively.
type ItemFilter struct {
	Category  string
	Status    entity.ItemStatus
	Condition entity.ItemCondition
	MinPoints *int
	MaxPoints *int
	Search    string
	UserID    *uuid.UUID
	Flagged   *bool
}

// ItemSort is the whitelisted sort specification for browse queries.
type ItemSort struct {
	Field      string // one of: createdAt, points, title
	Descending bool
}

// ItemPage is one page of browse results plus pagination totals.
type ItemPage struct {
	Items      []*entity.Item
	TotalItems int64
	Page       int
	Limit      int
}

// TotalPages returns the number of pages for the page's limit.
func (p *ItemPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}

	pages := p.TotalItems / int64(p.Limit)
	if p.TotalItems%int64(p.Limit) != 0 {
		pages++
	}

	return int(pages)
}

// ItemStats aggregates counts for the dashboard overview.
type ItemStats struct {
	TotalItems     int64
	SwapsCompleted int64
	ItemsAwaiting  int64
	FlaggedItems   int64
}

// ItemRepository defines the standard operations for listing persistence.
type ItemRepository interface {
	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// Create persists a new item entity.
	Create(ctx context.Context, item *entity.Item) error

	// Update modifies an existing item entity.
	Update(ctx context.Context, item *entity.Item) error

	// UpdateStatus changes only the lifecycle status of an item.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error

	// Browse returns a filtered, sorted, paginated set of items.
	Browse(ctx context.Context, filter ItemFilter, sort ItemSort, page, limit int) (*ItemPage, error)

	// DistinctCategories lists every category currently in use.
	DistinctCategories(ctx context.Context) ([]string, error)

	// DistinctConditions lists every condition currently in use.
	DistinctConditions(ctx context.Context) ([]string, error)

	// Stats aggregates the overview counters.
	Stats(ctx context.Context) (*ItemStats, error)

	// Featured returns up to limit recent items for the overview page.
	Featured(ctx context.Context, limit int) ([]*entity.Item, error)
}
