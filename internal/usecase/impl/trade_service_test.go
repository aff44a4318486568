package impl

import (
	"context"
	"testing"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	mockRepo "rewear/internal/mocks/repository"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tradeServiceMocks struct {
	itemRepo  *mockRepo.MockItemRepository
	tradeRepo *mockRepo.MockTradeRepository
	userRepo  *mockRepo.MockUserRepository
	coinRepo  *mockRepo.MockCoinRepository
}

func newTradeServiceForTest(t *testing.T) (usecase.TradeUsecase, tradeServiceMocks) {
	t.Helper()

	mocks := tradeServiceMocks{
		itemRepo:  mockRepo.NewMockItemRepository(t),
		tradeRepo: mockRepo.NewMockTradeRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		coinRepo:  mockRepo.NewMockCoinRepository(t),
	}
	factory := &mockRepo.StubRepositoryFactory{
		UserRepo:  mocks.userRepo,
		ItemRepo:  mocks.itemRepo,
		TradeRepo: mocks.tradeRepo,
		CoinRepo:  mocks.coinRepo,
	}

	service := NewTradeService(TradeServiceParams{
		TxManager: mockRepo.NewStubTransactionManager(factory),
		TradeRepo: mocks.tradeRepo,
		Logger:    newDiscardLogger(),
	})

	return service, mocks
}

func TestTradeService_Buy_Success(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	item := &entity.Item{
		ID:     itemID,
		UserID: sellerID,
		Points: 120,
		Status: entity.ItemStatusApproved,
	}

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(item, nil)
	mocks.tradeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Trade")).Return(nil)
	mocks.itemRepo.On("UpdateStatus", ctx, itemID, entity.ItemStatusPending).Return(nil)

	trade, err := service.Buy(ctx, usecase.BuyItemInput{
		ItemID:  itemID,
		BuyerID: buyerID,
		Message: "please",
	})
	require.NoError(t, err)
	assert.Equal(t, sellerID, trade.SellerID)
	assert.Equal(t, 120, trade.OfferAmount)
	assert.Equal(t, entity.TradeKindBuy, trade.Kind)
	assert.Equal(t, entity.TradeStatusPending, trade.Status)
}

func TestTradeService_Buy_OwnItem(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()
	ownerID := uuid.New()

	item := &entity.Item{ID: itemID, UserID: ownerID, Points: 120}
	mocks.itemRepo.On("FindByID", ctx, itemID).Return(item, nil)

	_, err := service.Buy(ctx, usecase.BuyItemInput{ItemID: itemID, BuyerID: ownerID})
	assert.ErrorIs(t, err, domainerrors.ErrOwnItemTrade)
}

func TestTradeService_Buy_ItemNotFound(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(nil, repository.ErrItemNotFound)

	_, err := service.Buy(ctx, usecase.BuyItemInput{ItemID: itemID, BuyerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestTradeService_Offer_KeepsItemBrowsable(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	itemID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	item := &entity.Item{ID: itemID, UserID: sellerID, Points: 120}

	mocks.itemRepo.On("FindByID", ctx, itemID).Return(item, nil)
	mocks.tradeRepo.On("Create", ctx, mock.AnythingOfType("*entity.Trade")).Return(nil)
	// no UpdateStatus expectation: the listing stays approved during an offer

	trade, err := service.Offer(ctx, usecase.OfferItemInput{
		ItemID:  itemID,
		BuyerID: buyerID,
		Amount:  80,
	})
	require.NoError(t, err)
	assert.Equal(t, 80, trade.OfferAmount)
	assert.Equal(t, entity.TradeKindOffer, trade.Kind)
	mocks.itemRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTradeService_Offer_NonPositiveAmount(t *testing.T) {
	service, _ := newTradeServiceForTest(t)

	_, err := service.Offer(context.Background(), usecase.OfferItemInput{
		ItemID:  uuid.New(),
		BuyerID: uuid.New(),
		Amount:  0,
	})
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}

func TestTradeService_Respond_AcceptCreditsSeller(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	tradeID := uuid.New()
	itemID := uuid.New()
	sellerID := uuid.New()

	trade := &entity.Trade{
		ID:          tradeID,
		ItemID:      itemID,
		SellerID:    sellerID,
		OfferAmount: 120,
		Status:      entity.TradeStatusPending,
	}
	seller := &entity.User{ID: sellerID, CoinBalance: 30}

	mocks.tradeRepo.On("FindByID", ctx, tradeID).Return(trade, nil)
	mocks.tradeRepo.On("Update", ctx, trade).Return(nil)
	mocks.itemRepo.On("UpdateStatus", ctx, itemID, entity.ItemStatusSwapped).Return(nil)
	mocks.userRepo.On("AcquireBalanceLock", ctx, sellerID).Return(seller, nil)
	mocks.userRepo.On("Update", ctx, seller).Return(nil)
	mocks.coinRepo.On("CreateEntry", ctx, mock.MatchedBy(func(entry *entity.CoinEntry) bool {
		return entry.Kind == entity.CoinEntrySaleReward &&
			entry.Amount == 120 &&
			entry.BalanceAfter == 150
	})).Return(nil)

	resolved, err := service.Respond(ctx, usecase.RespondTradeInput{
		TradeID:  tradeID,
		SellerID: sellerID,
		Action:   entity.TradeActionAccept,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TradeStatusAccepted, resolved.Status)
	assert.Equal(t, 150, seller.CoinBalance)
}

func TestTradeService_Respond_RejectRestoresItem(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	tradeID := uuid.New()
	itemID := uuid.New()
	sellerID := uuid.New()

	trade := &entity.Trade{
		ID:       tradeID,
		ItemID:   itemID,
		SellerID: sellerID,
		Status:   entity.TradeStatusPending,
	}

	mocks.tradeRepo.On("FindByID", ctx, tradeID).Return(trade, nil)
	mocks.tradeRepo.On("Update", ctx, trade).Return(nil)
	mocks.itemRepo.On("UpdateStatus", ctx, itemID, entity.ItemStatusApproved).Return(nil)

	resolved, err := service.Respond(ctx, usecase.RespondTradeInput{
		TradeID:  tradeID,
		SellerID: sellerID,
		Action:   entity.TradeActionReject,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TradeStatusRejected, resolved.Status)
}

func TestTradeService_Respond_WrongSeller(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	tradeID := uuid.New()

	trade := &entity.Trade{
		ID:       tradeID,
		SellerID: uuid.New(),
		Status:   entity.TradeStatusPending,
	}
	mocks.tradeRepo.On("FindByID", ctx, tradeID).Return(trade, nil)

	_, err := service.Respond(ctx, usecase.RespondTradeInput{
		TradeID:  tradeID,
		SellerID: uuid.New(),
		Action:   entity.TradeActionAccept,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTradeOwnershipViolation)
}

func TestTradeService_Respond_AlreadyResolved(t *testing.T) {
	service, mocks := newTradeServiceForTest(t)

	ctx := context.Background()
	tradeID := uuid.New()
	sellerID := uuid.New()

	trade := &entity.Trade{
		ID:       tradeID,
		SellerID: sellerID,
		Status:   entity.TradeStatusRejected,
	}
	mocks.tradeRepo.On("FindByID", ctx, tradeID).Return(trade, nil)

	_, err := service.Respond(ctx, usecase.RespondTradeInput{
		TradeID:  tradeID,
		SellerID: sellerID,
		Action:   entity.TradeActionAccept,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTradeAlreadyResolved)
}

func TestTradeService_Respond_InvalidAction(t *testing.T) {
	service, _ := newTradeServiceForTest(t)

	_, err := service.Respond(context.Background(), usecase.RespondTradeInput{
		TradeID:  uuid.New(),
		SellerID: uuid.New(),
		Action:   entity.TradeAction("cancel"),
	})
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(err))
}
