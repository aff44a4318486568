package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_SetOTP(t *testing.T) {
	now := time.Now()
	user := &User{OTPAttempts: 3}

	user.SetOTP("123456", 10*time.Minute, now)

	assert.Equal(t, "123456", user.OTPCode)
	assert.Equal(t, now.Add(10*time.Minute), user.OTPExpiresAt)
	assert.Zero(t, user.OTPAttempts)
	assert.Equal(t, now, user.LastOTPRequest)
}

func TestUser_OTPValid(t *testing.T) {
	now := time.Now()
	user := &User{}
	user.SetOTP("654321", 10*time.Minute, now)

	assert.True(t, user.OTPValid("654321", now))
	assert.False(t, user.OTPValid("000000", now))
	assert.False(t, user.OTPValid("654321", now.Add(11*time.Minute)))

	user.ClearOTP()
	assert.False(t, user.OTPValid("", now), "empty code never matches a cleared OTP")
}

func TestUser_ClearOTP(t *testing.T) {
	user := &User{}
	user.SetOTP("111111", time.Minute, time.Now())
	user.OTPAttempts = 2

	user.ClearOTP()

	assert.Empty(t, user.OTPCode)
	assert.True(t, user.OTPExpiresAt.IsZero())
	assert.Zero(t, user.OTPAttempts)
}
