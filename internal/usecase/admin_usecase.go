package usecase

import (
	"context"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// ModerationAction is an admin decision on a listing.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
	ModerationFlag    ModerationAction = "flag"
	ModerationUnflag  ModerationAction = "unflag"
)

// IsValid checks if the ModerationAction is a valid value.
func (a ModerationAction) IsValid() bool {
	switch a {
	case ModerationApprove, ModerationReject, ModerationFlag, ModerationUnflag:
		return true
	default:
		return false
	}
}

// ModerateItemInput defines an admin decision on a listing.
type ModerateItemInput struct {
	ItemID uuid.UUID
	Action ModerationAction
}

// UserListOutput is one page of accounts for the admin surface.
type UserListOutput struct {
	Users      []*entity.User
	TotalUsers int64
	Page       int
	Limit      int
}

// AdminUsecase defines the interface for the moderation surface.
type AdminUsecase interface {
	// ModerateItem applies an approve/reject/flag/unflag decision.
	ModerateItem(ctx context.Context, input ModerateItemInput) (*entity.Item, error)

	// ListUsers returns a page of accounts, newest first.
	ListUsers(ctx context.Context, page, limit int) (*UserListOutput, error)

	// ItemsReport renders the inventory report workbook.
	ItemsReport(ctx context.Context) ([]byte, error)
}
