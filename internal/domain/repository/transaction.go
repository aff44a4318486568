package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It ensures that a series of repository operations are executed atomically.
type TransactionManager interface {
	// Execute runs the given function within a single database transaction.
	// The function receives a RepositoryFactory bound to the transaction, and
	// the transaction commits only if the function returns nil.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}

// RepositoryFactory provides access to repositories that share one
// transactional context.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewItemRepository() ItemRepository
	NewTradeRepository() TradeRepository
	NewCoinRepository() CoinRepository
	NewCouponRepository() CouponRepository
	NewCommunityRepository() CommunityRepository
}
