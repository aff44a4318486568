package impl

import (
	"io"
	"log/slog"
	"time"

	"rewear/config"
	domainerrors "rewear/internal/domain/errors"
	"rewear/internal/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			TokenTTL:       7 * 24 * time.Hour,
			OTPTTL:         10 * time.Minute,
			OTPMaxAttempts: 5,
			OTPResendWait:  time.Minute,
		},
	}
}

func newTestCoinConfig() *config.Config {
	return &config.Config{
		Coupons: &config.CouponConfig{SweepSchedule: "@hourly"},
	}
}

// errorCode extracts the business error code when err carries one.
func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}
