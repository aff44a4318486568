package service

import (
	"time"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims carries the identity asserted by a validated access token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService abstracts issuing and validating access tokens.
type TokenService interface {
	// Generate issues a signed access token for the user.
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate parses the token string and returns its claims if the
	// signature and expiry check out.
	Validate(tokenString string) (*TokenClaims, error)

	// TTL reports how long issued tokens stay valid.
	TTL() time.Duration
}
