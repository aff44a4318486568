// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rewear/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// VerifyEmailInput defines the data required to confirm a signup OTP.
type VerifyEmailInput struct {
	Email string
	Code  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information.
type SignupOutput struct {
	User *entity.User
}

// AuthOutput returns the issued token after a successful login or verification.
type AuthOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup creates an unverified account and emails a one-time code.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// VerifyEmail confirms the pending OTP, marks the account verified and
	// issues an access token.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) (*AuthOutput, error)

	// ResendOTP issues a fresh code to an unverified account, subject to a
	// resend cooldown.
	ResendOTP(ctx context.Context, email string) error

	// Login authenticates credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// ForgotPassword emails a reset code. Unknown emails succeed silently.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword replaces the password after OTP confirmation.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// Profile returns the caller's account.
	Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile changes the caller's name and email.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
}
