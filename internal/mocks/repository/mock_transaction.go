package repository

import (
	"context"

	"rewear/internal/domain/repository"
)

// StubRepositoryFactory hands out the fixed doubles it was built with.
type StubRepositoryFactory struct {
	UserRepo      repository.UserRepository
	ItemRepo      repository.ItemRepository
	TradeRepo     repository.TradeRepository
	CoinRepo      repository.CoinRepository
	CouponRepo    repository.CouponRepository
	CommunityRepo repository.CommunityRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

func (f *StubRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return f.ItemRepo
}

func (f *StubRepositoryFactory) NewTradeRepository() repository.TradeRepository {
	return f.TradeRepo
}

func (f *StubRepositoryFactory) NewCoinRepository() repository.CoinRepository {
	return f.CoinRepo
}

func (f *StubRepositoryFactory) NewCouponRepository() repository.CouponRepository {
	return f.CouponRepo
}

func (f *StubRepositoryFactory) NewCommunityRepository() repository.CommunityRepository {
	return f.CommunityRepo
}

// StubTransactionManager runs the callback against a fixed factory without a
// real transaction. Commit/rollback behavior is exercised by the postgres
// implementation, not here.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func NewStubTransactionManager(factory repository.RepositoryFactory) *StubTransactionManager {
	return &StubTransactionManager{Factory: factory}
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(factory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
