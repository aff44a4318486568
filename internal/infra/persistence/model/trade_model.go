package model

import (
	"time"

	"github.com/google/uuid"
)

// TradeModel mirrors the 'trades' table.
type TradeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferAmount int       `gorm:"not null;check:offer_amount > 0"`
	Kind        string    `gorm:"type:varchar(10);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Message     string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Item   *ItemModel `gorm:"foreignKey:ItemID"`
	Buyer  *UserModel `gorm:"foreignKey:BuyerID"`
	Seller *UserModel `gorm:"foreignKey:SellerID"`
}

// TableName explicitly sets the table name for GORM.
func (TradeModel) TableName() string {
	return "trades"
}
