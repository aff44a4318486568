package repository

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCoinRepository struct {
	mock.Mock
}

func NewMockCoinRepository(t *testing.T) *MockCoinRepository {
	m := &MockCoinRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCoinRepository) CreateEntry(ctx context.Context, entry *entity.CoinEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockCoinRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.CoinEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CoinEntry), args.Error(1)
}
