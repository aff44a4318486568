package repository

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type MockCommunityRepository struct {
	mock.Mock
}

func NewMockCommunityRepository(t *testing.T) *MockCommunityRepository {
	m := &MockCommunityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommunityRepository) Create(ctx context.Context, thought *entity.CommunityThought) error {
	return m.Called(ctx, thought).Error(0)
}

func (m *MockCommunityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.CommunityThought, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CommunityThought), args.Error(1)
}
