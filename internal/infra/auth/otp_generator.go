// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"rewear/internal/domain/service"
)

// otpGenerator produces 6-digit numeric codes backed by crypto/rand.
type otpGenerator struct{}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator() service.OTPGenerator {
	return &otpGenerator{}
}

// Generate returns a zero-padded 6-digit code.
func (g *otpGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
