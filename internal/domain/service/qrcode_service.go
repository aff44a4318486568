package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCouponQR generates a QR code encoding a redeemed coupon
	GenerateCouponQR(couponID uuid.UUID) ([]byte, error)

	// ParseCouponQR parses QR code data and returns the coupon ID
	ParseCouponQR(qrData string) (uuid.UUID, error)
}
