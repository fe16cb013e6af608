package entity

import (
	"time"

	"github.com/google/uuid"
)

// MovementType classifies an inventory movement.
type MovementType string

const (
	MovementPurchase   MovementType = "purchase"
	MovementSale       MovementType = "sale"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
)

// InventoryMovement is an append-only audit record of a single stock change.
// Quantity is positive for stock in, negative for stock out. The sum of all
// movements for a product equals its current stock at any point in time.
// Movements are never updated or deleted.
type InventoryMovement struct {
	ID           uuid.UUID    `json:"id"`
	ProductID    uuid.UUID    `json:"product_id"`
	Quantity     int          `json:"quantity"`
	MovementType MovementType `json:"movement_type"`
	ReferenceID  string       `json:"reference_id"`
	Notes        string       `json:"notes"`
	CreatedBy    uuid.UUID    `json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
}
