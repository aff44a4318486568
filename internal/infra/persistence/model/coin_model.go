package model

import (
	"time"

	"github.com/google/uuid"
)

// CoinEntryModel mirrors the 'coin_entries' table, the append-only coin ledger.
type CoinEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind         string    `gorm:"type:varchar(20);not null"`
	Amount       int       `gorm:"not null"`
	Description  string    `gorm:"type:varchar(255)"`
	BalanceAfter int       `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoinEntryModel) TableName() string {
	return "coin_entries"
}
