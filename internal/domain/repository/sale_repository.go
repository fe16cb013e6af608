package repository

import (
	"context"
	"time"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for sale persistence.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrDuplicateSale is returned when a sale with the same ID already exists.
	ErrDuplicateSale = errors.New("sale already exists")
)

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	// CreateSale persists a new sale together with its line items.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// FindSaleByID retrieves a sale with its items by ID.
	FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// SetProviderReference stores the payment provider reference on a sale.
	SetProviderReference(ctx context.Context, id uuid.UUID, reference string) error

	// TransitionStatus conditionally moves a sale from one status to another,
	// optionally recording the raw provider response. It returns true when
	// the transition was applied and false when the sale was no longer in
	// the expected source status, making re-delivered confirmations a no-op.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SaleStatus, providerResponse []byte) (bool, error)

	// SummarizeCompletedSales aggregates completed sales for a cashier and
	// shop in a time window, grouped by payment method. Used at shift close.
	SummarizeCompletedSales(ctx context.Context, cashierID, shopID uuid.UUID, from, to time.Time) (*entity.SalesSummary, error)
}
