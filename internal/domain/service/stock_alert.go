package service

import (
	"context"

	"tillpoint/internal/domain/entity"
)

// StockAlertNotifier dispatches low-stock alerts after a sale or adjustment
// drops a product to its reorder level. It is a best-effort collaborator:
// callers invoke it after commit and ignore its errors, so a failed dispatch
// never affects sale or stock state.
type StockAlertNotifier interface {
	NotifyLowStock(ctx context.Context, product *entity.Product)
}
