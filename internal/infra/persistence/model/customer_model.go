package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel mirrors the 'customers' table. The loyalty_points check
// constraint backs the never-negative invariant at the storage level.
type CustomerModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Email         string          `gorm:"type:varchar(255);index"`
	Phone         string          `gorm:"type:varchar(32);index"`
	LoyaltyPoints int             `gorm:"not null;default:0;check:loyalty_points >= 0"`
	Tier          string          `gorm:"type:varchar(20);not null;default:'bronze'"`
	TotalSpent    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	VisitsCount   int             `gorm:"not null;default:0"`
	LastVisit     *time.Time
	IsActive      bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
