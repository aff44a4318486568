package usecase

import (
	"context"

	"rewear/internal/domain/entity"
	"rewear/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BrowseItemsInput captures the dashboard browse query.
type BrowseItemsInput struct {
	Category  string
	Status    string
	Condition string
	MinPoints *int
	MaxPoints *int
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// CreateItemInput defines the data required to list an item.
type CreateItemInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Size        string
	Color       string
	Brand       string
	Points      int
	Category    string
	Condition   string
	Images      []string
}

// UpdateItemInput defines the mutable fields of a listing.
type UpdateItemInput struct {
	ItemID      uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Size        string
	Color       string
	Brand       string
	Points      int
	Category    string
	Condition   string
	Images      []string
}

// --- Output DTOs ---

// OverviewOutput aggregates the dashboard landing page data.
type OverviewOutput struct {
	Stats    *repository.ItemStats
	Featured []*entity.Item
}

// BrowseItemsOutput is one page of listings plus the filter vocabularies.
type BrowseItemsOutput struct {
	Page       *repository.ItemPage
	Categories []string
	Conditions []string
}

// ItemUsecase defines the interface for listing-related business operations.
type ItemUsecase interface {
	// Overview returns the dashboard counters and featured items.
	Overview(ctx context.Context) (*OverviewOutput, error)

	// Browse returns a filtered, sorted, paginated set of listings.
	Browse(ctx context.Context, input BrowseItemsInput) (*BrowseItemsOutput, error)

	// GetItem returns a single listing by id.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// CreateItem validates and persists a new listing in pending status.
	CreateItem(ctx context.Context, input CreateItemInput) (*entity.Item, error)

	// UpdateItem lets the owner edit a listing's mutable fields.
	UpdateItem(ctx context.Context, input UpdateItemInput) (*entity.Item, error)

	// ListedByUser returns the caller's own listings, paginated.
	ListedByUser(ctx context.Context, userID uuid.UUID, page, limit int) (*repository.ItemPage, error)

	// BoughtByUser returns items the caller acquired through accepted trades.
	BoughtByUser(ctx context.Context, userID uuid.UUID, page, limit int) (*repository.ItemPage, error)
}
