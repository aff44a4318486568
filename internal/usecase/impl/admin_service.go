package impl

import (
	"context"
	"log/slog"

	deliverycontext "rewear/internal/delivery/context"
	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/infra/export"
	"rewear/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const reportRowLimit = 10000

// adminService implements the AdminUsecase interface.
type adminService struct {
	itemRepo     repository.ItemRepository
	tradeRepo    repository.TradeRepository
	userRepo     repository.UserRepository
	reportWriter export.ReportWriter
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ItemRepo     repository.ItemRepository
	TradeRepo    repository.TradeRepository
	UserRepo     repository.UserRepository
	ReportWriter export.ReportWriter
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		itemRepo:     params.ItemRepo,
		tradeRepo:    params.TradeRepo,
		userRepo:     params.UserRepo,
		reportWriter: params.ReportWriter,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ModerateItem applies an approve/reject/flag/unflag decision to a listing.
func (srv *adminService) ModerateItem(ctx context.Context, input usecase.ModerateItemInput) (*entity.Item, error) {
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"action must be approve, reject, flag or unflag")
	}

	item, err := srv.itemRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	switch input.Action {
	case usecase.ModerationApprove:
		item.Status = entity.ItemStatusApproved
	case usecase.ModerationReject:
		item.Status = entity.ItemStatusPending
		item.Flagged = true
	case usecase.ModerationFlag:
		item.Flagged = true
	case usecase.ModerationUnflag:
		item.Flagged = false
	}

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Item moderated",
		slog.String("itemID", item.ID.String()),
		slog.String("action", string(input.Action)))

	return item, nil
}

// ListUsers returns a page of accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context, page, limit int) (*usecase.UserListOutput, error) {
	page, limit = normalizePage(page, limit)

	users, total, err := srv.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserListOutput{
		Users:      users,
		TotalUsers: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// ItemsReport renders the inventory report workbook.
func (srv *adminService) ItemsReport(ctx context.Context) ([]byte, error) {
	items, err := srv.itemRepo.Browse(ctx, repository.ItemFilter{},
		repository.ItemSort{Field: "createdAt", Descending: true}, 1, reportRowLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items for report")
	}

	trades, err := srv.tradeRepo.ListRecent(ctx, reportRowLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load trades for report")
	}

	workbook, err := srv.reportWriter.WriteMarketplaceReport(items.Items, trades)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render report")
	}

	srv.log(ctx).Info("Inventory report rendered",
		slog.Int("items", len(items.Items)), slog.Int("trades", len(trades)))

	return workbook, nil
}
