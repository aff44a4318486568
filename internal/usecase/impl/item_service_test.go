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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemServiceMocks struct {
	itemRepo  *mockRepo.MockItemRepository
	tradeRepo *mockRepo.MockTradeRepository
	sanitizer *mockSvc.MockSanitizer
}

func newItemServiceForTest(t *testing.T) (usecase.ItemUsecase, itemServiceMocks) {
	t.Helper()

	mocks := itemServiceMocks{
		itemRepo:  mockRepo.NewMockItemRepository(t),
		tradeRepo: mockRepo.NewMockTradeRepository(t),
		sanitizer: mockSvc.NewMockSanitizer(t),
	}

	service := NewItemService(ItemServiceParams{
		ItemRepo:  mocks.itemRepo,
		TradeRepo: mocks.tradeRepo,
		Sanitizer: mocks.sanitizer,
		Logger:    newDiscardLogger(),
	})

	return service, mocks
}

func validCreateItemInput(userID uuid.UUID) usecase.CreateItemInput {
	return usecase.CreateItemInput{
		UserID:      userID,
		Title:       "Wool Coat",
		Description: "Barely worn wool coat",
		Size:        "M",
		Color:       "navy",
		Brand:       "Acme",
		Points:      150,
		Category:    "outerwear",
		Condition:   string(entity.ConditionLikeNew),
		Images:      []string{"https://cdn.example.com/coat.jpg"},
	}
}

func TestItemService_CreateItem_Success(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.sanitizer.On("Sanitize", "Barely worn wool coat").
		Return("Barely worn wool coat")
	mocks.itemRepo.On("Create", ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := service.CreateItem(ctx, validCreateItemInput(userID))
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusPending, item.Status)
	assert.Equal(t, userID, item.UserID)
	assert.Equal(t, "Wool Coat", item.Title)
}

func TestItemService_CreateItem_SanitizerStripsMarkup(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()

	input := validCreateItemInput(uuid.New())
	input.Description = "<script>alert(1)</script>Good coat"

	mocks.sanitizer.On("Sanitize", input.Description).Return("Good coat")
	mocks.itemRepo.On("Create", ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := service.CreateItem(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Good coat", item.Description)
}

func TestItemService_CreateItem_RejectsNonHTTPImage(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	input := validCreateItemInput(uuid.New())
	input.Images = []string{"javascript:alert(1)"}

	mocks.sanitizer.On("Sanitize", input.Description).Return(input.Description)

	_, err := service.CreateItem(context.Background(), input)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestItemService_CreateItem_RejectsNonPositivePoints(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	input := validCreateItemInput(uuid.New())
	input.Points = 0

	mocks.sanitizer.On("Sanitize", input.Description).Return(input.Description)

	_, err := service.CreateItem(context.Background(), input)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestItemService_UpdateItem_NotOwner(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()

	existing := &entity.Item{ID: itemID, UserID: uuid.New()}
	mocks.itemRepo.On("FindByID", ctx, itemID).Return(existing, nil)

	input := usecase.UpdateItemInput{ItemID: itemID, UserID: uuid.New()}
	_, err := service.UpdateItem(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrItemOwnershipViolation)
}

func TestItemService_UpdateItem_PreservesModerationState(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()
	ownerID := uuid.New()

	existing := &entity.Item{
		ID:      itemID,
		UserID:  ownerID,
		Status:  entity.ItemStatusApproved,
		Flagged: true,
	}
	mocks.itemRepo.On("FindByID", ctx, itemID).Return(existing, nil)
	mocks.sanitizer.On("Sanitize", "Barely worn wool coat").
		Return("Barely worn wool coat")
	mocks.itemRepo.On("Update", ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	base := validCreateItemInput(ownerID)
	updated, err := service.UpdateItem(ctx, usecase.UpdateItemInput{
		ItemID:      itemID,
		UserID:      ownerID,
		Title:       base.Title,
		Description: base.Description,
		Size:        base.Size,
		Color:       base.Color,
		Brand:       base.Brand,
		Points:      base.Points,
		Category:    base.Category,
		Condition:   base.Condition,
		Images:      base.Images,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusApproved, updated.Status)
	assert.True(t, updated.Flagged)
	assert.Equal(t, itemID, updated.ID)
}

func TestItemService_Browse_InvalidStatusFilter(t *testing.T) {
	service, _ := newItemServiceForTest(t)

	_, err := service.Browse(context.Background(), usecase.BrowseItemsInput{
		Status: "vaporized",
	})
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestItemService_Browse_NormalizesPagination(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()

	mocks.itemRepo.On("Browse", ctx, mock.Anything, mock.Anything, 1, defaultPageLimit).
		Return(&repository.ItemPage{Page: 1, Limit: defaultPageLimit}, nil)
	mocks.itemRepo.On("DistinctCategories", ctx).Return([]string{"outerwear"}, nil)
	mocks.itemRepo.On("DistinctConditions", ctx).Return([]string{"like_new"}, nil)

	output, err := service.Browse(ctx, usecase.BrowseItemsInput{Page: -3, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Page.Page)
	assert.Equal(t, []string{"outerwear"}, output.Categories)
}

func TestItemService_BoughtByUser(t *testing.T) {
	service, mocks := newItemServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	items := []*entity.Item{{ID: uuid.New()}, {ID: uuid.New()}}
	mocks.tradeRepo.On("FindAcceptedItemsByBuyer", ctx, userID, 1, defaultPageLimit).
		Return(items, int64(2), nil)

	page, err := service.BoughtByUser(ctx, userID, 1, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.TotalItems)
}
