package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	DiscountType  string    `gorm:"type:varchar(20);not null"`
	DiscountValue int       `gorm:"not null"`
	MinPurchase   int       `gorm:"not null;default:0"`
	CoinsRequired int       `gorm:"not null"`
	Active        bool      `gorm:"not null;default:true;index"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	UsedAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
