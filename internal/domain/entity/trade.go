package entity

import (
	"time"

	"github.com/google/uuid"
)

// TradeKind distinguishes a direct purchase from a price negotiation.
type TradeKind string

const (
	// TradeKindBuy is a direct purchase at the listed points.
	TradeKindBuy TradeKind = "buy"
	// TradeKindOffer is a buyer-proposed amount below or above the listed points.
	TradeKindOffer TradeKind = "offer"
)

// IsValid checks if the TradeKind is a valid value.
func (k TradeKind) IsValid() bool {
	return k == TradeKindBuy || k == TradeKindOffer
}

// TradeStatus is the resolution state of a trade. Transitions are modeled
// explicitly so that an invalid transition is a type-level impossibility for
// callers going through Resolve, not a silently accepted string write.
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCompleted TradeStatus = "completed"
)

// IsValid checks if the TradeStatus is a valid value.
func (s TradeStatus) IsValid() bool {
	switch s {
	case TradeStatusPending, TradeStatusAccepted, TradeStatusRejected, TradeStatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// Only pending trades can be resolved, and resolved trades are terminal except
// for accepted -> completed.
func (s TradeStatus) CanTransitionTo(next TradeStatus) bool {
	switch s {
	case TradeStatusPending:
		return next == TradeStatusAccepted || next == TradeStatusRejected
	case TradeStatusAccepted:
		return next == TradeStatusCompleted
	default:
		return false
	}
}

// TradeAction is a seller's decision on a pending trade.
type TradeAction string

const (
	TradeActionAccept TradeAction = "accept"
	TradeActionReject TradeAction = "reject"
)

// Status maps the action to the trade status it resolves to.
func (a TradeAction) Status() (TradeStatus, bool) {
	switch a {
	case TradeActionAccept:
		return TradeStatusAccepted, true
	case TradeActionReject:
		return TradeStatusRejected, true
	default:
		return "", false
	}
}

// Trade is a buyer-initiated buy/offer record against an Item, resolved by
// the seller exactly once.
type Trade struct {
	ID          uuid.UUID   // The unique identifier for the trade.
	ItemID      uuid.UUID   // The listing this trade targets.
	BuyerID     uuid.UUID   // The user who initiated the trade.
	SellerID    uuid.UUID   // The owner of the listing at initiation time.
	OfferAmount int         // Coins offered. Equals the item points for a direct buy.
	Kind        TradeKind   // buy or offer.
	Status      TradeStatus // Current resolution state.
	Message     string      // Optional buyer message to the seller.
	CreatedAt   time.Time   // Timestamp of when the trade was created.
	UpdatedAt   time.Time   // Timestamp of the last state change.

	// Populated for listing views; nil elsewhere.
	Item   *Item
	Buyer  *User
	Seller *User
}

// Resolve applies the seller decision if it is legal from the current status.
// It returns false when the trade has already been resolved.
func (t *Trade) Resolve(next TradeStatus) bool {
	if !t.Status.CanTransitionTo(next) {
		return false
	}
	t.Status = next

	return true
}
