package entity

import (
	"time"

	"github.com/google/uuid"
)

// CoinEntryKind classifies a coin ledger movement.
type CoinEntryKind string

const (
	// CoinEntryRedeemed records coins spent on a redemption coupon.
	CoinEntryRedeemed CoinEntryKind = "redeemed"
	// CoinEntrySaleReward records coins credited to a seller on an accepted trade.
	CoinEntrySaleReward CoinEntryKind = "sale_reward"
)

// CoinEntry is one append-only row of the coin audit ledger. Amount is signed:
// negative for spends, positive for credits. BalanceAfter snapshots the user's
// balance immediately after the movement was applied, inside the same database
// transaction.
type CoinEntry struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Kind         CoinEntryKind
	Amount       int
	Description  string
	BalanceAfter int
	CreatedAt    time.Time
}
