package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel mirrors the 'sales' table. The sale ID doubles as the payment
// provider reference for non-cash sales; ProviderResponse stores the raw
// provider payload captured at reconciliation.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	ShopID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CashierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`

	ProviderReference string `gorm:"type:varchar(128)"`
	ProviderResponse  []byte `gorm:"type:jsonb"`

	CustomerName  string `gorm:"type:varchar(255)"`
	CustomerPhone string `gorm:"type:varchar(32)"`
	CustomerEmail string `gorm:"type:varchar(255)"`

	Notes     string          `gorm:"type:text"`
	Items     []SaleItemModel `gorm:"foreignKey:SaleID"`
	CreatedAt time.Time       `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel mirrors the 'sale_items' table. Prices are frozen at sale
// creation; rows are never updated afterwards.
type SaleItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SaleItemModel) TableName() string {
	return "sale_items"
}
