// Package model contains the GORM persistence models mirroring the database
// schema. Models stay in this package; the repositories map them to and from
// the pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. SKU is unique per shop, not
// globally, hence the composite unique index.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID       uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_products_shop_sku"`
	SKU          string          `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_shop_sku"`
	Name         string          `gorm:"type:varchar(255);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentStock int             `gorm:"not null;default:0"`
	ReorderLevel int             `gorm:"not null;default:0"`
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
