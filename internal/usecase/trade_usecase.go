package usecase

import (
	"context"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BuyItemInput defines a direct purchase at the listed points.
type BuyItemInput struct {
	ItemID  uuid.UUID
	BuyerID uuid.UUID
	Message string
}

// OfferItemInput defines a buyer-proposed amount on a listing.
type OfferItemInput struct {
	ItemID  uuid.UUID
	BuyerID uuid.UUID
	Amount  int
	Message string
}

// RespondTradeInput defines the seller decision on a pending trade.
type RespondTradeInput struct {
	TradeID  uuid.UUID
	SellerID uuid.UUID
	Action   entity.TradeAction
}

// TradeUsecase defines the interface for buy/offer transaction operations.
type TradeUsecase interface {
	// Buy creates a pending trade at the item's listed points and parks the
	// listing in pending status.
	Buy(ctx context.Context, input BuyItemInput) (*entity.Trade, error)

	// Offer creates a pending trade at a buyer-proposed amount.
	Offer(ctx context.Context, input OfferItemInput) (*entity.Trade, error)

	// SellerTransactions lists pending trades against the caller's items.
	SellerTransactions(ctx context.Context, sellerID uuid.UUID) ([]*entity.Trade, error)

	// BuyerTransactions lists the caller's trades.
	BuyerTransactions(ctx context.Context, buyerID uuid.UUID) ([]*entity.Trade, error)

	// Respond applies the seller's accept/reject decision exactly once.
	// Accepting marks the item swapped and credits the seller's coin balance;
	// rejecting returns the item to the approved pool.
	Respond(ctx context.Context, input RespondTradeInput) (*entity.Trade, error)
}
