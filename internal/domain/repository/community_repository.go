package repository

import (
	"context"

	"rewear/internal/domain/entity"
)

// CommunityRepository defines the standard operations for community thoughts.
type CommunityRepository interface {
	// Create persists a new community thought.
	Create(ctx context.Context, thought *entity.CommunityThought) error

	// ListRecent returns the latest thoughts, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.CommunityThought, error)
}
