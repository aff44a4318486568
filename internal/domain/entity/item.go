package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the moderation/sale state of a listing.
type ItemStatus string

const (
	// ItemStatusPending means the listing is awaiting admin approval, or has a
	// pending purchase against it.
	ItemStatusPending ItemStatus = "pending"
	// ItemStatusApproved means the listing is publicly browsable.
	ItemStatusApproved ItemStatus = "approved"
	// ItemStatusSwapped means the listing has been sold.
	ItemStatusSwapped ItemStatus = "swapped"
)

// IsValid checks if the ItemStatus is a valid value.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusPending, ItemStatusApproved, ItemStatusSwapped:
		return true
	default:
		return false
	}
}

// ItemCondition represents the wear grade of a listed garment.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "New"
	ConditionLikeNew ItemCondition = "Like New"
	ConditionGood    ItemCondition = "Good"
	ConditionFair    ItemCondition = "Fair"
)

// IsValid checks if the ItemCondition is a valid value.
func (c ItemCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair:
		return true
	default:
		return false
	}
}

// Item is a single secondhand clothing listing. Points is the item's price
// denominated in reward coins, the platform's only economic unit.
type Item struct {
	ID          uuid.UUID     // The unique identifier for the listing.
	Title       string        // Short listing title.
	Description string        // Longer free-text description, sanitized on intake.
	Size        string        // Garment size label, e.g. "M" or "32x32".
	Color       string        // Optional color description.
	Brand       string        // Optional brand name.
	Points      int           // Asking price in coins. Always positive.
	Status      ItemStatus    // Current lifecycle state of the listing.
	Flagged     bool          // True when the listing has been flagged for review.
	Images      []string      // One or more http(s) image URLs.
	Category    string        // Listing category, e.g. "Outerwear".
	Condition   ItemCondition // Wear grade of the garment.
	UserID      uuid.UUID     // The user who listed the item.
	CreatedAt   time.Time     // Timestamp of when the listing was created.
	UpdatedAt   time.Time     // Timestamp of the last modification to the listing.
}
