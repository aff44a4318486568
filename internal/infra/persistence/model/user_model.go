// Package model defines the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user'"`
	EmailVerified  bool      `gorm:"not null;default:false"`
	OTPCode        string    `gorm:"type:varchar(10)"`
	OTPExpiresAt   time.Time
	OTPAttempts    int `gorm:"not null;default:0"`
	LastOTPRequest time.Time
	CoinBalance    int  `gorm:"not null;default:0;check:coin_balance >= 0"`
	Active         bool `gorm:"not null;default:true"`
	LastLogin      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items   []ItemModel   `gorm:"foreignKey:UserID"`
	Coupons []CouponModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
