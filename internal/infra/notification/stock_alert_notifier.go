// Package notification contains the outbound alert dispatchers.
package notification

import (
	"context"
	"log/slog"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/service"
)

type slogStockAlertNotifier struct {
	logger *slog.Logger
}

// NewStockAlertNotifier creates a log-backed low-stock notifier. Alert
// delivery is best effort by contract, so a structured warning that ops
// tooling can route on is enough here; swapping in push or email delivery
// only means providing a different implementation of the same interface.
func NewStockAlertNotifier(logger *slog.Logger) service.StockAlertNotifier {
	return &slogStockAlertNotifier{logger: logger}
}

// NotifyLowStock emits a structured low-stock alert.
func (n *slogStockAlertNotifier) NotifyLowStock(ctx context.Context, product *entity.Product) {
	n.logger.LogAttrs(ctx, slog.LevelWarn, "product at or below reorder level",
		slog.String("product_id", product.ID.String()),
		slog.String("shop_id", product.ShopID.String()),
		slog.String("sku", product.SKU),
		slog.String("name", product.Name),
		slog.Int("current_stock", product.CurrentStock),
		slog.Int("reorder_level", product.ReorderLevel),
	)
}
