package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryMovementModel mirrors the 'inventory_movements' table. Rows are
// append-only; there is no UpdatedAt because a movement is never updated.
type InventoryMovementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     int       `gorm:"not null"`
	MovementType string    `gorm:"type:varchar(20);not null"`
	ReferenceID  string    `gorm:"type:varchar(64);index"`
	Notes        string    `gorm:"type:text"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}
