package model

import (
	"time"

	"github.com/google/uuid"
)

// CommunityThoughtModel mirrors the 'community_thoughts' table.
type CommunityThoughtModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Author    string    `gorm:"type:varchar(100);not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CommunityThoughtModel) TableName() string {
	return "community_thoughts"
}
