package repository

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTradeRepository struct {
	mock.Mock
}

func NewMockTradeRepository(t *testing.T) *MockTradeRepository {
	m := &MockTradeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trade, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Trade), args.Error(1)
}

func (m *MockTradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	return m.Called(ctx, trade).Error(0)
}

func (m *MockTradeRepository) Update(ctx context.Context, trade *entity.Trade) error {
	return m.Called(ctx, trade).Error(0)
}

func (m *MockTradeRepository) FindPendingBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Trade, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Trade), args.Error(1)
}

func (m *MockTradeRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Trade, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Trade), args.Error(1)
}

func (m *MockTradeRepository) FindAcceptedItemsByBuyer(ctx context.Context, buyerID uuid.UUID, page, limit int) ([]*entity.Item, int64, error) {
	args := m.Called(ctx, buyerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockTradeRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Trade, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Trade), args.Error(1)
}
