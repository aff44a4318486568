package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "rewear/internal/delivery/context"
	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/domain/repository"
	"rewear/internal/domain/service"
	"rewear/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const thoughtsPageSize = 50

// communityService implements the CommunityUsecase interface.
type communityService struct {
	communityRepo repository.CommunityRepository
	sanitizer     service.Sanitizer
	logger        *slog.Logger
}

// CommunityServiceParams holds dependencies for communityService, injected by Fx.
type CommunityServiceParams struct {
	fx.In

	CommunityRepo repository.CommunityRepository
	Sanitizer     service.Sanitizer
	Logger        *slog.Logger
}

// NewCommunityService is the constructor for communityService.
func NewCommunityService(params CommunityServiceParams) usecase.CommunityUsecase {
	return &communityService{
		communityRepo: params.CommunityRepo,
		sanitizer:     params.Sanitizer,
		logger:        params.Logger,
	}
}

func (srv *communityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListThoughts returns the latest thoughts, newest first.
func (srv *communityService) ListThoughts(ctx context.Context) ([]*entity.CommunityThought, error) {
	thoughts, err := srv.communityRepo.ListRecent(ctx, thoughtsPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list community thoughts")
	}

	return thoughts, nil
}

// PostThought sanitizes and persists a new thought.
func (srv *communityService) PostThought(ctx context.Context, input usecase.PostThoughtInput) (*entity.CommunityThought, error) {
	author := strings.TrimSpace(input.Author)
	text := srv.sanitizer.Sanitize(input.Text)

	if author == "" || text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("author and text are required")
	}

	thought := &entity.CommunityThought{
		Author: author,
		Text:   text,
	}
	if err := srv.communityRepo.Create(ctx, thought); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Community thought posted", slog.String("thoughtID", thought.ID.String()))

	return thought, nil
}
