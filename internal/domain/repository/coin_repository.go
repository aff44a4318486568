package repository

import (
	"context"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// CoinRepository defines the standard operations for the coin audit ledger.
// Balance mutations go through UserRepository.AcquireBalanceLock inside a
// transaction; this repository only records the resulting ledger rows.
type CoinRepository interface {
	// CreateEntry appends a ledger entry recording a balance change.
	CreateEntry(ctx context.Context, entry *entity.CoinEntry) error

	// ListByUser returns the user's most recent ledger entries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CoinEntry, error)
}
