package usecase

import (
	"context"

	"rewear/internal/domain/entity"
)

// PostThoughtInput defines the data required to post to the community board.
type PostThoughtInput struct {
	Author string
	Text   string
}

// CommunityUsecase defines the interface for the community board.
type CommunityUsecase interface {
	// ListThoughts returns the latest thoughts, newest first.
	ListThoughts(ctx context.Context) ([]*entity.CommunityThought, error)

	// PostThought sanitizes and persists a new thought.
	PostThought(ctx context.Context, input PostThoughtInput) (*entity.CommunityThought, error)
}
