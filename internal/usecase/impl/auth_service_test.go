package impl

import (
	"context"
	"testing"
	"time"

	"rewear/internal/domain/entity"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/errors"
	"rewear/internal/domain/repository"
	mockRepo "rewear/internal/mocks/repository"
	mockSvc "rewear/internal/mocks/service"
	"rewear/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T, userRepo *mockRepo.MockUserRepository,
	hasher *mockSvc.MockPasswordHasher, tokenSvc *mockSvc.MockTokenService,
	otpGen *mockSvc.MockOTPGenerator, mailer *mockSvc.MockMailer,
) usecase.AuthUsecase {
	t.Helper()

	factory := &mockRepo.StubRepositoryFactory{UserRepo: userRepo}

	return NewAuthService(AuthServiceParams{
		TxManager:    mockRepo.NewStubTransactionManager(factory),
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		OTPGenerator: otpGen,
		Mailer:       mailer,
		Config:       newTestAuthConfig(),
		Logger:       newDiscardLogger(),
	})
}

func TestAuthService_Signup_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	otpGen.On("Generate").Return("123456", nil)
	userRepo.On("FindByEmail", ctx, "jo@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mailer.On("SendOTP", ctx, "jo@example.com", "Jo", "123456").Return(nil)

	output, err := service.Signup(ctx, usecase.SignupInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.False(t, output.User.EmailVerified)
	assert.True(t, output.User.OTPValid("123456", time.Now()))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	otpGen.On("Generate").Return("123456", nil)
	userRepo.On("FindByEmail", ctx, "taken@example.com").
		Return(&entity.User{Email: "taken@example.com"}, nil)

	_, err := service.Signup(ctx, usecase.SignupInput{
		Name:     "Jo",
		Email:    "taken@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Signup_MailFailureIsNotFatal(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	hasher.On("Hash", "secret-password").Return("hashed", nil)
	otpGen.On("Generate").Return("123456", nil)
	userRepo.On("FindByEmail", ctx, "jo@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	mailer.On("SendOTP", ctx, "jo@example.com", "Jo", "123456").
		Return(errors.New("smtp unreachable"))

	output, err := service.Signup(ctx, usecase.SignupInput{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.NotNil(t, output.User)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:     userID,
		Name:   "Jo",
		Email:  "jo@example.com",
		Role:   entity.RoleUser,
		Active: true,
	}
	user.SetOTP("123456", 10*time.Minute, time.Now())

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)
	tokenSvc.On("Generate", userID, entity.RoleUser).Return("signed-token", nil)
	mailer.On("SendWelcome", ctx, "jo@example.com", "Jo").Return(nil)

	output, err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "jo@example.com",
		Code:  "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.True(t, output.User.EmailVerified)
	assert.Empty(t, output.User.OTPCode)
}

func TestAuthService_VerifyEmail_WrongCodeCountsAttempt(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{Email: "jo@example.com", Active: true}
	user.SetOTP("123456", 10*time.Minute, time.Now())

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	userRepo.On("Update", ctx, user).Return(nil)

	_, err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "jo@example.com",
		Code:  "000000",
	})
	assert.Equal(t, domainerrors.ErrInvalidOTP.ErrorCode(), errorCode(err))
	assert.Equal(t, 1, user.OTPAttempts)
}

func TestAuthService_VerifyEmail_AttemptCap(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{Email: "jo@example.com", Active: true}
	user.SetOTP("123456", 10*time.Minute, time.Now())
	user.OTPAttempts = 5

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)

	_, err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "jo@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTooManyOTPAttempts)
}

func TestAuthService_VerifyEmail_AlreadyVerified(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{Email: "jo@example.com", EmailVerified: true, Active: true}
	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)

	_, err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "jo@example.com",
		Code:  "123456",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyVerified)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:            userID,
		Email:         "jo@example.com",
		PasswordHash:  "hashed",
		Role:          entity.RoleUser,
		EmailVerified: true,
		Active:        true,
	}

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	hasher.On("Verify", "hashed", "secret-password").Return(nil)
	userRepo.On("Update", ctx, user).Return(nil)
	tokenSvc.On("Generate", userID, entity.RoleUser).Return("signed-token", nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.False(t, output.User.LastLogin.IsZero())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{
		Email:         "jo@example.com",
		PasswordHash:  "hashed",
		EmailVerified: true,
		Active:        true,
	}

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	hasher.On("Verify", "hashed", "wrong").Return(errors.New("mismatch"))

	_, err := service.Login(ctx, usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnverifiedEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{
		Email:        "jo@example.com",
		PasswordHash: "hashed",
		Active:       true,
	}

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	hasher.On("Verify", "hashed", "secret-password").Return(nil)

	_, err := service.Login(ctx, usecase.LoginInput{
		Email:    "jo@example.com",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_ResendOTP_Cooldown(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{Email: "jo@example.com", Active: true}
	user.SetOTP("123456", 10*time.Minute, time.Now().Add(-10*time.Second))

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)

	err := service.ResendOTP(ctx, "jo@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrOTPCooldown)
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := service.ForgotPassword(ctx, "ghost@example.com")
	assert.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()

	user := &entity.User{Email: "jo@example.com", PasswordHash: "old-hash", Active: true}
	user.SetOTP("123456", 10*time.Minute, time.Now())

	userRepo.On("FindByEmail", ctx, "jo@example.com").Return(user, nil)
	hasher.On("Hash", "new-password").Return("new-hash", nil)
	userRepo.On("Update", ctx, user).Return(nil)

	err := service.ResetPassword(ctx, usecase.ResetPasswordInput{
		Email:       "jo@example.com",
		Code:        "123456",
		NewPassword: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
	assert.Empty(t, user.OTPCode)
}

func TestAuthService_UpdateProfile_EmailTaken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	otpGen := mockSvc.NewMockOTPGenerator(t)
	mailer := mockSvc.NewMockMailer(t)
	service := newAuthServiceForTest(t, userRepo, hasher, tokenSvc, otpGen, mailer)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "jo@example.com", Active: true}

	userRepo.On("FindByID", ctx, userID).Return(user, nil)
	userRepo.On("FindByEmail", ctx, "other@example.com").
		Return(&entity.User{Email: "other@example.com"}, nil)

	_, err := service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: userID,
		Email:  "other@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}
