// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rewear/config"
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	otpGenerator   service.OTPGenerator
	mailer         service.Mailer
	otpTTL         time.Duration
	otpMaxAttempts int
	otpResendWait  time.Duration
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTPGenerator service.OTPGenerator
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		otpGenerator:   params.OTPGenerator,
		mailer:         params.Mailer,
		otpTTL:         params.Config.Auth.OTPTTL,
		otpMaxAttempts: params.Config.Auth.OTPMaxAttempts,
		otpResendWait:  params.Config.Auth.OTPResendWait,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an unverified account and emails a one-time code.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate OTP")
	}

	now := time.Now()
	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
		Active:       true,
	}
	user.SetOTP(code, srv.otpTTL, now)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	// Mail delivery is best-effort: the account exists either way and the
	// code can be re-requested through resend-otp.
	if err := srv.mailer.SendOTP(ctx, user.Email, user.Name, code); err != nil {
		srv.log(ctx).Warn("Failed to send signup OTP email",
			slog.String("email", user.Email), slog.String("error", err.Error()))
	}

	srv.log(ctx).Info("Signup completed", slog.String("userID", user.ID.String()))

	return &usecase.SignupOutput{User: user}, nil
}

// VerifyEmail confirms the pending OTP, marks the account verified and issues an access token.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) (*usecase.AuthOutput, error) {
	var verifiedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.findByEmail(ctx, userRepo, input.Email)
		if err != nil {
			return err
		}
		if user.EmailVerified {
			return domainerrors.ErrEmailAlreadyVerified
		}
		if user.OTPAttempts >= srv.otpMaxAttempts {
			return domainerrors.ErrTooManyOTPAttempts
		}

		if !user.OTPValid(input.Code, time.Now()) {
			user.OTPAttempts++
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to record OTP attempt")
			}

			remaining := srv.otpMaxAttempts - user.OTPAttempts

			return domainerrors.ErrInvalidOTP.WithDetails(
				fmt.Sprintf("%d attempts remaining", remaining))
		}

		user.EmailVerified = true
		user.ClearOTP()
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		verifiedUser = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Generate(verifiedUser.ID, verifiedUser.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	if err := srv.mailer.SendWelcome(ctx, verifiedUser.Email, verifiedUser.Name); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email",
			slog.String("email", verifiedUser.Email), slog.String("error", err.Error()))
	}

	srv.log(ctx).Info("Email verified", slog.String("userID", verifiedUser.ID.String()))

	return &usecase.AuthOutput{AccessToken: token, User: verifiedUser}, nil
}

// ResendOTP issues a fresh code to an unverified account, subject to a resend cooldown.
func (srv *authService) ResendOTP(ctx context.Context, email string) error {
	user, err := srv.findByEmail(ctx, srv.userRepo, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domainerrors.ErrEmailAlreadyVerified
	}

	now := time.Now()
	if now.Sub(user.LastOTPRequest) < srv.otpResendWait {
		return domainerrors.ErrOTPCooldown
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate OTP")
	}

	user.SetOTP(code, srv.otpTTL, now)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new OTP")
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, user.Name, code); err != nil {
		return errors.Wrap(err, "failed to send OTP email")
	}

	return nil
}

// Login authenticates credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.Active {
		return nil, domainerrors.ErrAccountDeactivated
	}
	if err := srv.hasher.Verify(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	user.LastLogin = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to record last login",
			slog.String("userID", user.ID.String()), slog.String("error", err.Error()))
	}

	token, err := srv.tokenService.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{AccessToken: token, User: user}, nil
}

// ForgotPassword emails a reset code. Unknown emails succeed silently so the
// endpoint cannot be used to probe registered addresses.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	if !user.Active {
		return domainerrors.ErrAccountDeactivated
	}

	now := time.Now()
	if now.Sub(user.LastOTPRequest) < srv.otpResendWait {
		return domainerrors.ErrOTPCooldown
	}

	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate OTP")
	}

	user.SetOTP(code, srv.otpTTL, now)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset OTP")
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, user.Name, code); err != nil {
		return errors.Wrap(err, "failed to send reset OTP email")
	}

	return nil
}

// ResetPassword replaces the password after OTP confirmation.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := srv.findByEmail(ctx, userRepo, input.Email)
		if err != nil {
			return err
		}
		if user.OTPAttempts >= srv.otpMaxAttempts {
			return domainerrors.ErrTooManyOTPAttempts
		}

		if !user.OTPValid(input.Code, time.Now()) {
			user.OTPAttempts++
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to record OTP attempt")
			}

			return domainerrors.ErrInvalidOTP
		}

		passwordHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed
		}

		user.PasswordHash = passwordHash
		user.ClearOTP()

		return userRepo.Update(ctx, user)
	})
}

// Profile returns the caller's account.
func (srv *authService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user, nil
}

// UpdateProfile changes the caller's name and email.
func (srv *authService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	var updatedUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user by ID")
		}

		if input.Email != "" && input.Email != user.Email {
			if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
				return domainerrors.ErrEmailTaken
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			user.Email = input.Email
		}
		if input.Name != "" {
			user.Name = input.Name
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updatedUser, nil
}

// findByEmail translates the repository not-found error into the domain error.
func (srv *authService) findByEmail(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}
