// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single marketplace account.
type User struct {
	ID             uuid.UUID // The unique identifier for the user.
	Name           string    // The user's display name.
	Email          string    // The user's email, used as the login identifier. Unique.
	PasswordHash   string    // Stores the bcrypt-hashed password.
	Role           Role      // The user's role: user, admin or owner.
	EmailVerified  bool      // True once the signup OTP has been confirmed.
	OTPCode        string    // The currently pending 6-digit OTP, empty when none is outstanding.
	OTPExpiresAt   time.Time // When the pending OTP stops being accepted.
	OTPAttempts    int       // Failed verification attempts against the pending OTP.
	LastOTPRequest time.Time // When an OTP was last generated, used for resend rate limiting.
	CoinBalance    int       // The user's reward coin balance. Never negative.
	Active         bool      // False when the account has been deactivated by an admin.
	LastLogin      time.Time // Timestamp of the most recent successful login.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}

// OTPValid reports whether the given code matches the pending OTP and the
// OTP has not expired. It does not mutate attempt counters.
func (u *User) OTPValid(code string, now time.Time) bool {
	return u.OTPCode != "" && u.OTPCode == code && now.Before(u.OTPExpiresAt)
}

// ClearOTP removes any pending OTP state after a successful verification.
func (u *User) ClearOTP() {
	u.OTPCode = ""
	u.OTPExpiresAt = time.Time{}
	u.OTPAttempts = 0
}

// SetOTP installs a freshly generated code and resets the attempt counter.
func (u *User) SetOTP(code string, ttl time.Duration, now time.Time) {
	u.OTPCode = code
	u.OTPExpiresAt = now.Add(ttl)
	u.OTPAttempts = 0
	u.LastOTPRequest = now
}
