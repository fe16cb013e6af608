// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductForUpdate retrieves a product by ID while holding an
	// exclusive row lock for the remainder of the surrounding transaction.
	// Callers must invoke it inside TransactionManager.Execute; outside a
	// transaction the lock is released immediately and provides no protection.
	FindProductForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateStock sets the product's current stock to the given value.
	// Only the stock ledger may call this, paired with a movement append
	// in the same transaction.
	UpdateStock(ctx context.Context, id uuid.UUID, currentStock int) error
}
