package impl

import (
	"context"
	"testing"
	"time"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	mockRepo "rewear/internal/mocks/repository"
	mockSvc "rewear/internal/mocks/service"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coinServiceMocks struct {
	userRepo   *mockRepo.MockUserRepository
	coinRepo   *mockRepo.MockCoinRepository
	couponRepo *mockRepo.MockCouponRepository
	qrcode     *mockSvc.MockQRCodeService
}

func newCoinServiceForTest(t *testing.T) (usecase.CoinUsecase, coinServiceMocks) {
	t.Helper()

	mocks := coinServiceMocks{
		userRepo:   mockRepo.NewMockUserRepository(t),
		coinRepo:   mockRepo.NewMockCoinRepository(t),
		couponRepo: mockRepo.NewMockCouponRepository(t),
		qrcode:     mockSvc.NewMockQRCodeService(t),
	}
	factory := &mockRepo.StubRepositoryFactory{
		UserRepo:   mocks.userRepo,
		CoinRepo:   mocks.coinRepo,
		CouponRepo: mocks.couponRepo,
	}

	service := NewCoinService(CoinServiceParams{
		TxManager:     mockRepo.NewStubTransactionManager(factory),
		UserRepo:      mocks.userRepo,
		CoinRepo:      mocks.coinRepo,
		CouponRepo:    mocks.couponRepo,
		QRCodeService: mocks.qrcode,
		Config:        newTestCoinConfig(),
		Logger:        newDiscardLogger(),
	})

	return service, mocks
}

func TestCoinService_Balance(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, CoinBalance: 75}, nil)

	balance, err := service.Balance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 75, balance)
}

func TestCoinService_AvailableCoupons_AnnotatesAffordability(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, CoinBalance: 80}, nil)

	catalog, err := service.AvailableCoupons(ctx, userID)
	require.NoError(t, err)
	require.Len(t, catalog, len(entity.CouponCatalog))

	for _, option := range catalog {
		assert.Equal(t, option.CoinsRequired <= 80, option.CanRedeem, option.ID)
	}
}

func TestCoinService_CreateCoupon_Success(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, CoinBalance: 120}

	mocks.userRepo.On("AcquireBalanceLock", ctx, userID).Return(user, nil)
	mocks.couponRepo.On("Create", ctx, mock.AnythingOfType("*entity.Coupon")).Return(nil)
	mocks.userRepo.On("Update", ctx, user).Return(nil)
	mocks.coinRepo.On("CreateEntry", ctx, mock.MatchedBy(func(entry *entity.CoinEntry) bool {
		return entry.Kind == entity.CoinEntryRedeemed &&
			entry.Amount == -50 &&
			entry.BalanceAfter == 70
	})).Return(nil)

	coupon, err := service.CreateCoupon(ctx, userID, "discount_10")
	require.NoError(t, err)
	assert.Equal(t, 70, user.CoinBalance)
	assert.True(t, coupon.Active)
	assert.Nil(t, coupon.UsedAt)
	assert.Equal(t, 50, coupon.CoinsRequired)
	assert.True(t, coupon.ExpiresAt.After(time.Now().AddDate(0, 0, 29)))
}

func TestCoinService_CreateCoupon_InsufficientCoins(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.On("AcquireBalanceLock", ctx, userID).
		Return(&entity.User{ID: userID, CoinBalance: 10}, nil)

	_, err := service.CreateCoupon(ctx, userID, "discount_10")
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientCoins)
}

func TestCoinService_CreateCoupon_UnknownOption(t *testing.T) {
	service, _ := newCoinServiceForTest(t)

	_, err := service.CreateCoupon(context.Background(), uuid.New(), "no_such_option")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownCouponOption)
}

func TestCoinService_RedeemCoupon_Success(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	couponID := uuid.New()

	coupon := &entity.Coupon{
		ID:        couponID,
		UserID:    userID,
		Active:    true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mocks.couponRepo.On("FindByID", ctx, couponID).Return(coupon, nil)
	mocks.couponRepo.On("Update", ctx, coupon).Return(nil)

	redeemed, err := service.RedeemCoupon(ctx, userID, couponID)
	require.NoError(t, err)
	assert.NotNil(t, redeemed.UsedAt)
}

func TestCoinService_RedeemCoupon_AlreadyUsed(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	couponID := uuid.New()
	used := time.Now().Add(-time.Hour)

	coupon := &entity.Coupon{
		ID:        couponID,
		UserID:    userID,
		Active:    true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
		UsedAt:    &used,
	}

	mocks.couponRepo.On("FindByID", ctx, couponID).Return(coupon, nil)

	_, err := service.RedeemCoupon(ctx, userID, couponID)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotUsable)
}

func TestCoinService_RedeemCoupon_NotOwner(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	couponID := uuid.New()

	coupon := &entity.Coupon{
		ID:        couponID,
		UserID:    uuid.New(),
		Active:    true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mocks.couponRepo.On("FindByID", ctx, couponID).Return(coupon, nil)

	_, err := service.RedeemCoupon(ctx, uuid.New(), couponID)
	assert.ErrorIs(t, err, domainerrors.ErrCouponOwnershipViolation)
}

func TestCoinService_CouponQR_Success(t *testing.T) {
	service, mocks := newCoinServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	couponID := uuid.New()

	coupon := &entity.Coupon{
		ID:        couponID,
		UserID:    userID,
		Active:    true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mocks.couponRepo.On("FindByID", ctx, couponID).Return(coupon, nil)
	mocks.qrcode.On("GenerateCouponQR", couponID).Return([]byte("png-bytes"), nil)

	png, err := service.CouponQR(ctx, userID, couponID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}
