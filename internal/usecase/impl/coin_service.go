package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rewear/config"
	deliverycontext "rewear/internal/delivery/context"
	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/domain/service"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const ledgerPageSize = 20

// coinService implements the CoinUsecase interface.
type coinService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	coinRepo      repository.CoinRepository
	couponRepo    repository.CouponRepository
	qrcodeService service.QRCodeService
	validityDays  int
	logger        *slog.Logger
}

// CoinServiceParams holds dependencies for coinService, injected by Fx.
type CoinServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	CoinRepo      repository.CoinRepository
	CouponRepo    repository.CouponRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCoinService is the constructor for coinService.
func NewCoinService(params CoinServiceParams) usecase.CoinUsecase {
	return &coinService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		coinRepo:      params.CoinRepo,
		couponRepo:    params.CouponRepo,
		qrcodeService: params.QRCodeService,
		validityDays:  params.Config.Coupons.ValidityDays,
		logger:        params.Logger,
	}
}

func (srv *coinService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Balance returns the caller's current coin balance.
func (srv *coinService) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return user.CoinBalance, nil
}

// Transactions returns the caller's latest ledger entries, newest first.
func (srv *coinService) Transactions(ctx context.Context, userID uuid.UUID) ([]*entity.CoinEntry, error) {
	entries, err := srv.coinRepo.ListByUser(ctx, userID, ledgerPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coin transactions")
	}

	return entries, nil
}

// AvailableCoupons returns the static catalog annotated with whether the
// caller's balance covers each option.
func (srv *coinService) AvailableCoupons(ctx context.Context, userID uuid.UUID) ([]usecase.CatalogCoupon, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog := make([]usecase.CatalogCoupon, 0, len(entity.CouponCatalog))
	for _, option := range entity.CouponCatalog {
		catalog = append(catalog, usecase.CatalogCoupon{
			CouponOption: option,
			CanRedeem:    user.CoinBalance >= option.CoinsRequired,
		})
	}

	return catalog, nil
}

// CreateCoupon exchanges coins for a catalog option. The balance check,
// deduction, coupon row and ledger entry all commit or roll back together.
func (srv *coinService) CreateCoupon(ctx context.Context, userID uuid.UUID, optionID string) (*entity.Coupon, error) {
	option, ok := entity.FindCouponOption(optionID)
	if !ok {
		return nil, domainerrors.ErrUnknownCouponOption
	}

	var coupon *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		couponRepo := repoFactory.NewCouponRepository()
		coinRepo := repoFactory.NewCoinRepository()

		user, err := userRepo.AcquireBalanceLock(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to lock user balance")
		}

		if user.CoinBalance < option.CoinsRequired {
			return domainerrors.ErrInsufficientCoins
		}

		validityDays := option.ValidForDays
		if srv.validityDays > 0 {
			validityDays = srv.validityDays
		}

		coupon = &entity.Coupon{
			UserID:        userID,
			Title:         option.Title,
			Description:   option.Description,
			DiscountType:  option.DiscountType,
			DiscountValue: option.DiscountValue,
			MinPurchase:   option.MinPurchase,
			CoinsRequired: option.CoinsRequired,
			Active:        true,
			ExpiresAt:     time.Now().AddDate(0, 0, validityDays),
		}
		if err := couponRepo.Create(ctx, coupon); err != nil {
			return err
		}

		user.CoinBalance -= option.CoinsRequired
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to deduct coins")
		}

		return coinRepo.CreateEntry(ctx, &entity.CoinEntry{
			UserID:       userID,
			Kind:         entity.CoinEntryRedeemed,
			Amount:       -option.CoinsRequired,
			Description:  fmt.Sprintf("Redeemed coupon: %s", option.Title),
			BalanceAfter: user.CoinBalance,
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Coupon created",
		slog.String("couponID", coupon.ID.String()),
		slog.String("option", optionID))

	return coupon, nil
}

// RedemptionCoupons returns the caller's active, unused, unexpired coupons.
func (srv *coinService) RedemptionCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.FindUsableByUser(ctx, userID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemption coupons")
	}

	return coupons, nil
}

// RedeemCoupon consumes a coupon the caller owns.
func (srv *coinService) RedeemCoupon(ctx context.Context, userID, couponID uuid.UUID) (*entity.Coupon, error) {
	var redeemed *entity.Coupon

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.NewCouponRepository()

		coupon, err := srv.findOwnedCoupon(ctx, couponRepo, userID, couponID)
		if err != nil {
			return err
		}

		now := time.Now()
		if !coupon.Usable(now) {
			return domainerrors.ErrCouponNotUsable
		}

		coupon.UsedAt = &now
		if err := couponRepo.Update(ctx, coupon); err != nil {
			return err
		}

		redeemed = coupon

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Coupon redeemed", slog.String("couponID", couponID.String()))

	return redeemed, nil
}

// CouponQR renders a PNG QR code for a coupon the caller owns.
func (srv *coinService) CouponQR(ctx context.Context, userID, couponID uuid.UUID) ([]byte, error) {
	coupon, err := srv.findOwnedCoupon(ctx, srv.couponRepo, userID, couponID)
	if err != nil {
		return nil, err
	}
	if !coupon.Usable(time.Now()) {
		return nil, domainerrors.ErrCouponNotUsable
	}

	png, err := srv.qrcodeService.GenerateCouponQR(coupon.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render coupon QR")
	}

	return png, nil
}

func (srv *coinService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *coinService) findOwnedCoupon(ctx context.Context, couponRepo repository.CouponRepository, userID, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}
	if coupon.UserID != userID {
		return nil, domainerrors.ErrCouponOwnershipViolation
	}

	return coupon, nil
}
