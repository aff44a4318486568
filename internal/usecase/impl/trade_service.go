package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "rewear/internal/delivery/context"
	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tradeService implements the TradeUsecase interface.
type tradeService struct {
	txManager repository.TransactionManager
	tradeRepo repository.TradeRepository
	logger    *slog.Logger
}

// TradeServiceParams holds dependencies for tradeService, injected by Fx.
type TradeServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TradeRepo repository.TradeRepository
	Logger    *slog.Logger
}

// NewTradeService is the constructor for tradeService.
func NewTradeService(params TradeServiceParams) usecase.TradeUsecase {
	return &tradeService{
		txManager: params.TxManager,
		tradeRepo: params.TradeRepo,
		logger:    params.Logger,
	}
}

func (srv *tradeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Buy creates a pending trade at the item's listed points and parks the
// listing in pending status so no second buyer can claim it meanwhile.
func (srv *tradeService) Buy(ctx context.Context, input usecase.BuyItemInput) (*entity.Trade, error) {
	var trade *entity.Trade

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		tradeRepo := repoFactory.NewTradeRepository()

		item, err := findItem(ctx, itemRepo, input.ItemID)
		if err != nil {
			return err
		}
		if item.UserID == input.BuyerID {
			return domainerrors.ErrOwnItemTrade
		}

		trade = &entity.Trade{
			ItemID:      item.ID,
			BuyerID:     input.BuyerID,
			SellerID:    item.UserID,
			OfferAmount: item.Points,
			Kind:        entity.TradeKindBuy,
			Status:      entity.TradeStatusPending,
			Message:     input.Message,
		}
		if err := tradeRepo.Create(ctx, trade); err != nil {
			return err
		}

		return itemRepo.UpdateStatus(ctx, item.ID, entity.ItemStatusPending)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Buy request created",
		slog.String("tradeID", trade.ID.String()),
		slog.String("itemID", input.ItemID.String()))

	return trade, nil
}

// Offer creates a pending trade at a buyer-proposed amount. The listing
// stays browsable while the seller decides.
func (srv *tradeService) Offer(ctx context.Context, input usecase.OfferItemInput) (*entity.Trade, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer amount must be positive")
	}

	var trade *entity.Trade

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		tradeRepo := repoFactory.NewTradeRepository()

		item, err := findItem(ctx, itemRepo, input.ItemID)
		if err != nil {
			return err
		}
		if item.UserID == input.BuyerID {
			return domainerrors.ErrOwnItemTrade
		}

		trade = &entity.Trade{
			ItemID:      item.ID,
			BuyerID:     input.BuyerID,
			SellerID:    item.UserID,
			OfferAmount: input.Amount,
			Kind:        entity.TradeKindOffer,
			Status:      entity.TradeStatusPending,
			Message:     input.Message,
		}

		return tradeRepo.Create(ctx, trade)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer created",
		slog.String("tradeID", trade.ID.String()),
		slog.String("itemID", input.ItemID.String()),
		slog.Int("amount", input.Amount))

	return trade, nil
}

// SellerTransactions lists pending trades against the caller's items.
func (srv *tradeService) SellerTransactions(ctx context.Context, sellerID uuid.UUID) ([]*entity.Trade, error) {
	trades, err := srv.tradeRepo.FindPendingBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller transactions")
	}

	return trades, nil
}

// BuyerTransactions lists the caller's trades.
func (srv *tradeService) BuyerTransactions(ctx context.Context, buyerID uuid.UUID) ([]*entity.Trade, error) {
	trades, err := srv.tradeRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer transactions")
	}

	return trades, nil
}

// Respond applies the seller's accept/reject decision exactly once. Accepting
// marks the item swapped and credits the seller's coin balance; rejecting
// returns the item to the approved pool. All writes share one transaction.
func (srv *tradeService) Respond(ctx context.Context, input usecase.RespondTradeInput) (*entity.Trade, error) {
	next, ok := input.Action.Status()
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("action must be accept or reject")
	}

	var resolved *entity.Trade

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tradeRepo := repoFactory.NewTradeRepository()
		itemRepo := repoFactory.NewItemRepository()

		trade, err := tradeRepo.FindByID(ctx, input.TradeID)
		if err != nil {
			if errors.Is(err, repository.ErrTradeNotFound) {
				return domainerrors.ErrTradeNotFound
			}

			return errors.Wrap(err, "failed to find trade")
		}

		if trade.SellerID != input.SellerID {
			return domainerrors.ErrTradeOwnershipViolation
		}
		if !trade.Resolve(next) {
			return domainerrors.ErrTradeAlreadyResolved
		}

		if err := tradeRepo.Update(ctx, trade); err != nil {
			return err
		}

		switch next {
		case entity.TradeStatusAccepted:
			if err := itemRepo.UpdateStatus(ctx, trade.ItemID, entity.ItemStatusSwapped); err != nil {
				return err
			}
			if err := srv.creditSeller(ctx, repoFactory, trade); err != nil {
				return err
			}
		case entity.TradeStatusRejected:
			if err := itemRepo.UpdateStatus(ctx, trade.ItemID, entity.ItemStatusApproved); err != nil {
				return err
			}
		}

		resolved = trade

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Trade resolved",
		slog.String("tradeID", resolved.ID.String()),
		slog.String("status", string(resolved.Status)))

	return resolved, nil
}

// creditSeller adds the sale reward to the seller's balance under a row lock
// and records the matching ledger entry.
func (srv *tradeService) creditSeller(ctx context.Context, repoFactory repository.RepositoryFactory, trade *entity.Trade) error {
	userRepo := repoFactory.NewUserRepository()
	coinRepo := repoFactory.NewCoinRepository()

	seller, err := userRepo.AcquireBalanceLock(ctx, trade.SellerID)
	if err != nil {
		return errors.Wrap(err, "failed to lock seller balance")
	}

	seller.CoinBalance += trade.OfferAmount
	if err := userRepo.Update(ctx, seller); err != nil {
		return errors.Wrap(err, "failed to credit seller")
	}

	return coinRepo.CreateEntry(ctx, &entity.CoinEntry{
		UserID:       seller.ID,
		Kind:         entity.CoinEntrySaleReward,
		Amount:       trade.OfferAmount,
		Description:  fmt.Sprintf("Sale reward for trade %s", trade.ID),
		BalanceAfter: seller.CoinBalance,
	})
}

// findItem translates the repository not-found error into the domain error.
func findItem(ctx context.Context, itemRepo repository.ItemRepository, id uuid.UUID) (*entity.Item, error) {
	item, err := itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}
