package model

import (
	"time"

	"github.com/google/uuid"
)

// ItemModel mirrors the 'items' table.
type ItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text;not null"`
	Size        string    `gorm:"type:varchar(50);not null"`
	Color       string    `gorm:"type:varchar(50)"`
	Brand       string    `gorm:"type:varchar(100)"`
	Points      int       `gorm:"not null;check:points > 0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Flagged     bool      `gorm:"not null;default:false"`
	Images      []string  `gorm:"type:jsonb;serializer:json"`
	Category    string    `gorm:"type:varchar(100);not null;index"`
	Condition   string    `gorm:"type:varchar(20);not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}
