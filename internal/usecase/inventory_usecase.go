package usecase

import (
	"context"

	"tillpoint/internal/domain/entity"

	"github.com/google/uuid"
)

// RestockInput is the request to add purchased stock to a product.
type RestockInput struct {
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// AdjustStockInput is the request for a manual stock correction. Quantity is
// positive for stock found, negative for stock lost.
type AdjustStockInput struct {
	Quantity int    `json:"quantity" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

// InventoryUsecase covers the stock ledger operations outside the sale path.
// Both operations follow the same locking discipline as sale deduction: lock
// the product row, mutate stock and append a movement in one transaction.
type InventoryUsecase interface {
	// Restock records a purchase movement. It never rejects for
	// insufficiency since stock only increases.
	Restock(ctx context.Context, scope entity.AccessScope, productID uuid.UUID, input *RestockInput) (*entity.Product, error)

	// AdjustStock records a manual adjustment movement. Negative adjustments
	// may not drive stock below zero.
	AdjustStock(ctx context.Context, scope entity.AccessScope, productID uuid.UUID, input *AdjustStockInput) (*entity.Product, error)
}
