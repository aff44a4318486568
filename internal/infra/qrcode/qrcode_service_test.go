package qrcode

import (
	"encoding/json"
	"testing"

	"rewear/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateCouponQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	couponID := uuid.New()

	png, err := svc.GenerateCouponQR(couponID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_ParseCouponQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	couponID := uuid.New()
	payload, err := json.Marshal(QRCodeData{CouponID: couponID.String(), Type: "coupon"})
	require.NoError(t, err)

	parsed, err := svc.ParseCouponQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, couponID, parsed)
}

func TestQRCodeService_ParseCouponQR_WrongType(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	payload, err := json.Marshal(QRCodeData{CouponID: uuid.New().String(), Type: "gift_card"})
	require.NoError(t, err)

	_, err = svc.ParseCouponQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseCouponQR_Garbage(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.ParseCouponQR("not json")
	assert.Error(t, err)
}
