package repository

import (
	"context"

	"tillpoint/internal/domain/entity"

	"github.com/google/uuid"
)

// MovementRepository is the insert-only interface to the inventory movement
// ledger. There is deliberately no update or delete operation: corrections
// are made by appending compensating movements.
type MovementRepository interface {
	// AppendMovement persists a new inventory movement.
	AppendMovement(ctx context.Context, movement *entity.InventoryMovement) error

	// FindMovementsByProduct retrieves the movement history for a product,
	// newest first.
	FindMovementsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error)

	// SumMovementsByProduct returns the sum of all movement quantities for a
	// product. Used to validate the running stock total against the ledger.
	SumMovementsByProduct(ctx context.Context, productID uuid.UUID) (int, error)
}
