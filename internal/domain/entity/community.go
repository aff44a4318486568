package entity

import (
	"time"

	"github.com/google/uuid"
)

// CommunityThought is a short public post on the community board.
// Thoughts are write-once; there is no edit or delete flow.
type CommunityThought struct {
	ID        uuid.UUID
	Author    string // Display name of the poster, not a user reference.
	Text      string // Sanitized free text.
	CreatedAt time.Time
}
