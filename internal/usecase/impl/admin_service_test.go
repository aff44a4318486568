package impl

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	mockRepo "rewear/internal/mocks/repository"
	mockSvc "rewear/internal/mocks/service"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceMocks struct {
	itemRepo     *mockRepo.MockItemRepository
	tradeRepo    *mockRepo.MockTradeRepository
	userRepo     *mockRepo.MockUserRepository
	reportWriter *mockSvc.MockReportWriter
}

func newAdminServiceForTest(t *testing.T) (usecase.AdminUsecase, adminServiceMocks) {
	t.Helper()

	mocks := adminServiceMocks{
		itemRepo:     mockRepo.NewMockItemRepository(t),
		tradeRepo:    mockRepo.NewMockTradeRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		reportWriter: mockSvc.NewMockReportWriter(t),
	}

	service := NewAdminService(AdminServiceParams{
		ItemRepo:     mocks.itemRepo,
		TradeRepo:    mocks.tradeRepo,
		UserRepo:     mocks.userRepo,
		ReportWriter: mocks.reportWriter,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestAdminService_ModerateItem_Approve(t *testing.T) {
	service, mocks := newAdminServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()

	item := &entity.Item{ID: itemID, Status: entity.ItemStatusPending}

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(item, nil)
	mocks.itemRepo.On("Update", ctx, item).Return(nil)

	moderated, err := service.ModerateItem(ctx, usecase.ModerateItemInput{
		ItemID: itemID,
		Action: usecase.ModerationApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusApproved, moderated.Status)
}

func TestAdminService_ModerateItem_RejectFlagsListing(t *testing.T) {
	service, mocks := newAdminServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()

	item := &entity.Item{ID: itemID, Status: entity.ItemStatusApproved}

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(item, nil)
	mocks.itemRepo.On("Update", ctx, item).Return(nil)

	moderated, err := service.ModerateItem(ctx, usecase.ModerateItemInput{
		ItemID: itemID,
		Action: usecase.ModerationReject,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPending, moderated.Status)
	assert.True(t, moderated.Flagged)
}

func TestAdminService_ModerateItem_InvalidAction(t *testing.T) {
	service, _ := newAdminServiceForTest(t)

	_, err := service.ModerateItem(context.Background(), usecase.ModerateItemInput{
		ItemID: uuid.New(),
		Action: usecase.ModerationAction("obliterate"),
	})
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestAdminService_ModerateItem_NotFound(t *testing.T) {
	service, mocks := newAdminServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(nil, repository.ErrItemNotFound)

	_, err := service.ModerateItem(ctx, usecase.ModerateItemInput{
		ItemID: itemID,
		Action: usecase.ModerationApprove,
	})
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestAdminService_ListUsers(t *testing.T) {
	service, mocks := newAdminServiceForTest(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	mocks.userRepo.On("List", ctx, 1, defaultPageLimit).Return(users, int64(2), nil)

	output, err := service.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, output.Users, 2)
	assert.Equal(t, int64(2), output.TotalUsers)
	assert.Equal(t, 1, output.Page)
}

func TestAdminService_ItemsReport(t *testing.T) {
	service, mocks := newAdminServiceForTest(t)

	ctx := context.Background()

	items := []*entity.Item{{ID: uuid.New()}}
	trades := []*entity.Trade{{ID: uuid.New()}}

	mocks.itemRepo.On("Browse", ctx, repository.ItemFilter{},
		repository.ItemSort{Field: "createdAt", Descending: true}, 1, reportRowLimit).
		Return(&repository.ItemPage{Items: items, TotalItems: 1}, nil)
	mocks.tradeRepo.On("ListRecent", ctx, reportRowLimit).Return(trades, nil)
	mocks.reportWriter.On("WriteMarketplaceReport", items, trades).
		Return([]byte("xlsx-bytes"), nil)

	workbook, err := service.ItemsReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), workbook)
}
