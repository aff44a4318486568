package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

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

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
	featuredLimit    = 8
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo  repository.ItemRepository
	tradeRepo repository.TradeRepository
	sanitizer service.Sanitizer
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo  repository.ItemRepository
	TradeRepo repository.TradeRepository
	Sanitizer service.Sanitizer
	Logger    *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo:  params.ItemRepo,
		tradeRepo: params.TradeRepo,
		sanitizer: params.Sanitizer,
		logger:    params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Overview returns the dashboard counters and featured items.
func (srv *itemService) Overview(ctx context.Context) (*usecase.OverviewOutput, error) {
	stats, err := srv.itemRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate overview stats")
	}

	featured, err := srv.itemRepo.Featured(ctx, featuredLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured items")
	}

	return &usecase.OverviewOutput{Stats: stats, Featured: featured}, nil
}

// Browse returns a filtered, sorted, paginated set of listings.
func (srv *itemService) Browse(ctx context.Context, input usecase.BrowseItemsInput) (*usecase.BrowseItemsOutput, error) {
	filter := repository.ItemFilter{
		Category:  input.Category,
		Search:    input.Search,
		MinPoints: input.MinPoints,
		MaxPoints: input.MaxPoints,
	}
	if input.Status != "" {
		status := entity.ItemStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status filter")
		}
		filter.Status = status
	}
	if input.Condition != "" {
		condition := entity.ItemCondition(input.Condition)
		if !condition.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown condition filter")
		}
		filter.Condition = condition
	}

	sort := repository.ItemSort{
		Field:      input.SortBy,
		Descending: !strings.EqualFold(input.SortOrder, "asc"),
	}

	page, limit := normalizePage(input.Page, input.Limit)

	result, err := srv.itemRepo.Browse(ctx, filter, sort, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse items")
	}

	categories, err := srv.itemRepo.DistinctCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	conditions, err := srv.itemRepo.DistinctConditions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conditions")
	}

	return &usecase.BrowseItemsOutput{
		Page:       result,
		Categories: categories,
		Conditions: conditions,
	}, nil
}

// GetItem returns a single listing by id.
func (srv *itemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// CreateItem validates and persists a new listing in pending status.
func (srv *itemService) CreateItem(ctx context.Context, input usecase.CreateItemInput) (*entity.Item, error) {
	item, err := srv.buildItem(input)
	if err != nil {
		return nil, err
	}

	if err := srv.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Item listed",
		slog.String("itemID", item.ID.String()),
		slog.String("userID", item.UserID.String()))

	return item, nil
}

// UpdateItem lets the owner edit a listing's mutable fields.
func (srv *itemService) UpdateItem(ctx context.Context, input usecase.UpdateItemInput) (*entity.Item, error) {
	existing, err := srv.GetItem(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != input.UserID {
		return nil, domainerrors.ErrItemOwnershipViolation
	}

	updated, err := srv.buildItem(usecase.CreateItemInput{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Size:        input.Size,
		Color:       input.Color,
		Brand:       input.Brand,
		Points:      input.Points,
		Category:    input.Category,
		Condition:   input.Condition,
		Images:      input.Images,
	})
	if err != nil {
		return nil, err
	}

	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.Flagged = existing.Flagged
	updated.CreatedAt = existing.CreatedAt

	if err := srv.itemRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// ListedByUser returns the caller's own listings, paginated.
func (srv *itemService) ListedByUser(ctx context.Context, userID uuid.UUID, page, limit int) (*repository.ItemPage, error) {
	page, limit = normalizePage(page, limit)

	result, err := srv.itemRepo.Browse(ctx, repository.ItemFilter{UserID: &userID},
		repository.ItemSort{Field: "createdAt", Descending: true}, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user items")
	}

	return result, nil
}

// BoughtByUser returns items the caller acquired through accepted trades.
func (srv *itemService) BoughtByUser(ctx context.Context, userID uuid.UUID, page, limit int) (*repository.ItemPage, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := srv.tradeRepo.FindAcceptedItemsByBuyer(ctx, userID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bought items")
	}

	return &repository.ItemPage{
		Items:      items,
		TotalItems: total,
		Page:       page,
		Limit:      limit,
	}, nil
}

// buildItem validates listing input and assembles a pending Item entity.
func (srv *itemService) buildItem(input usecase.CreateItemInput) (*entity.Item, error) {
	title := strings.TrimSpace(input.Title)
	description := srv.sanitizer.Sanitize(input.Description)
	size := strings.TrimSpace(input.Size)
	category := strings.TrimSpace(input.Category)

	if title == "" || description == "" || size == "" || category == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"title, description, size and category are required")
	}
	if input.Points <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("points must be positive")
	}

	condition := entity.ItemCondition(input.Condition)
	if !condition.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown condition")
	}

	if len(input.Images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one image URL is required")
	}
	for _, image := range input.Images {
		if !isHTTPURL(image) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("image URLs must be http(s)")
		}
	}

	return &entity.Item{
		Title:       title,
		Description: description,
		Size:        size,
		Color:       strings.TrimSpace(input.Color),
		Brand:       strings.TrimSpace(input.Brand),
		Points:      input.Points,
		Status:      entity.ItemStatusPending,
		Images:      input.Images,
		Category:    category,
		Condition:   condition,
		UserID:      input.UserID,
	}, nil
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// normalizePage clamps pagination input to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}
