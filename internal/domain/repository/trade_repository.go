package repository

import (
	"context"
	"errors"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTradeNotFound is a domain-specific error returned when a trade is not found.
var ErrTradeNotFound = errors.New("trade not found")

// TradeRepository defines the standard operations for trade persistence.
type TradeRepository interface {
	// FindByID retrieves a single trade by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trade, error)

	// Create persists a new trade entity.
	Create(ctx context.Context, trade *entity.Trade) error

	// Update modifies an existing trade entity.
	Update(ctx context.Context, trade *entity.Trade) error

	// FindPendingBySeller lists pending trades against the seller's items,
	// newest first, with item and buyer summaries populated.
	FindPendingBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Trade, error)

	// FindByBuyer lists all trades the buyer initiated, newest first, with
	// item and seller summaries populated.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Trade, error)

	// FindAcceptedItemsByBuyer lists the items a buyer acquired through
	// accepted trades, newest first, together with the total count.
	FindAcceptedItemsByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Item, int64, error)

	// ListRecent returns the latest trades across all users, newest first.
	// Used by the admin reporting surface.
	ListRecent(ctx context.Context, limit int) ([]*entity.Trade, error)
}
