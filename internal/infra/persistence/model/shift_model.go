package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftModel mirrors the 'shifts' table. The single-open-shift rule is
// enforced by a partial unique index:
//
//	CREATE UNIQUE INDEX idx_shifts_one_open_per_cashier
//	    ON shifts (cashier_id) WHERE status = 'open';
//
// GORM tags cannot express the WHERE clause, so the index lives in the
// schema migration; inserts that violate it surface as a unique constraint
// violation.
type ShiftModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	CashierID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShopID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null"`
	EndTime   *time.Time

	OpeningCash    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ClosingCash    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ExpectedCash   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CashDifference decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	TotalSales        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CashSales         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CardSales         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MobileMoneySales  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TransactionsCount int             `gorm:"not null;default:0"`

	Status       string     `gorm:"type:varchar(20);not null;index"`
	OpeningNotes string     `gorm:"type:text"`
	ClosingNotes string     `gorm:"type:text"`
	ClosedBy     *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftModel) TableName() string {
	return "shifts"
}

// ShiftActivityModel mirrors the 'shift_activities' table, an append-only log.
type ShiftActivityModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	ShiftID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ActivityType string          `gorm:"type:varchar(20);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftActivityModel) TableName() string {
	return "shift_activities"
}
