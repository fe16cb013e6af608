package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/domain/service"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type inventoryService struct {
	txManager repository.TransactionManager
	notifier  service.StockAlertNotifier
	logger    *slog.Logger
}

// NewInventoryService creates the stock ledger service for restocks and
// manual adjustments.
func NewInventoryService(
	txManager repository.TransactionManager,
	notifier service.StockAlertNotifier,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// Restock records a purchase movement and raises stock accordingly.
func (s *inventoryService) Restock(ctx context.Context, scope entity.AccessScope, productID uuid.UUID, input *usecase.RestockInput) (*entity.Product, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidation.WithDetails("quantity must be at least 1")
	}

	return s.applyMovement(ctx, scope, productID, input.Quantity, entity.MovementPurchase, input.Reference, input.Notes)
}

// AdjustStock records a manual correction. Negative adjustments may not drive
// stock below zero.
func (s *inventoryService) AdjustStock(ctx context.Context, scope entity.AccessScope, productID uuid.UUID, input *usecase.AdjustStockInput) (*entity.Product, error) {
	if input.Quantity == 0 {
		return nil, domainerrors.ErrValidation.WithDetails("quantity must not be zero")
	}
	if input.Reason == "" {
		return nil, domainerrors.ErrValidation.WithDetails("reason is required for stock adjustments")
	}

	return s.applyMovement(ctx, scope, productID, input.Quantity, entity.MovementAdjustment, "", input.Reason)
}

// applyMovement is the shared lock-mutate-append path. It follows the same
// discipline as sale deduction: the product row stays locked from the stock
// read until the movement append commits.
func (s *inventoryService) applyMovement(ctx context.Context, scope entity.AccessScope, productID uuid.UUID, quantity int, movementType entity.MovementType, reference, notes string) (*entity.Product, error) {
	var product *entity.Product
	lowStock := false

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		movementRepo := f.NewMovementRepository()

		var err error
		product, err = productRepo.FindProductForUpdate(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("product %s not found", productID))
			}

			return errors.Wrap(err, "failed to lock product")
		}

		if !scope.CanAccessShop(product.ShopID) {
			return domainerrors.ErrAccessDenied
		}

		newStock := product.CurrentStock + quantity
		if newStock < 0 {
			return domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf(
				"product %s: available %d, adjustment %d would drive stock negative",
				product.SKU, product.CurrentStock, quantity,
			))
		}

		if err := productRepo.UpdateStock(ctx, productID, newStock); err != nil {
			return errors.Wrap(err, "failed to update stock")
		}
		product.CurrentStock = newStock
		lowStock = product.IsLowStock()

		movement := &entity.InventoryMovement{
			ID:           uuid.New(),
			ProductID:    productID,
			Quantity:     quantity,
			MovementType: movementType,
			ReferenceID:  reference,
			Notes:        notes,
			CreatedBy:    scope.UserID,
			CreatedAt:    time.Now(),
		}
		if err := movementRepo.AppendMovement(ctx, movement); err != nil {
			return errors.Wrap(err, "failed to append movement")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if lowStock {
		s.notifier.NotifyLowStock(ctx, product)
	}

	return product, nil
}
