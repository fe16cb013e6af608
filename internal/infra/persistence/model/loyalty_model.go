package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTransactionModel mirrors the 'loyalty_transactions' table, the
// append-only point ledger.
type LoyaltyTransactionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type         string     `gorm:"type:varchar(20);not null"`
	Points       int        `gorm:"not null"`
	BalanceAfter int        `gorm:"not null"`
	SaleID       *uuid.UUID `gorm:"type:uuid;index"`
	RewardID     *uuid.UUID `gorm:"type:uuid;index"`
	Description  string     `gorm:"type:text"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyTransactionModel) TableName() string {
	return "loyalty_transactions"
}

// LoyaltyRewardModel mirrors the 'loyalty_rewards' table.
type LoyaltyRewardModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string          `gorm:"type:varchar(255);not null"`
	PointsRequired     int             `gorm:"not null"`
	DiscountType       string          `gorm:"type:varchar(20);not null"`
	DiscountValue      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MinPurchase        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MaxUsesPerCustomer int             `gorm:"not null;default:0"`
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	IsActive           bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyRewardModel) TableName() string {
	return "loyalty_rewards"
}
