package repository

import (
	"context"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository defines the interface for loyalty customer operations.
type CustomerRepository interface {
	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerForUpdate retrieves a customer while holding an exclusive
	// row lock for the remainder of the surrounding transaction, so that
	// concurrent accruals and redemptions serialize on the point balance.
	FindCustomerForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// UpdateLoyaltyState persists points, spend, visit and tier changes.
	UpdateLoyaltyState(ctx context.Context, customer *entity.Customer) error
}
