package impl

import (
	"context"
	"testing"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	mockRepo "tillpoint/internal/mocks/repository"
	mockSvc "tillpoint/internal/mocks/service"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Restock_RaisesStockAndAppendsMovement(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 3)

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)
	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 53).
		Return(nil)
	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(_ context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, 50, movement.Quantity)
			assert.Equal(t, entity.MovementPurchase, movement.MovementType)
			assert.Equal(t, "PO-2041", movement.ReferenceID)
			assert.Equal(t, scope.UserID, movement.CreatedBy)
		}).
		Return(nil)

	svc := NewInventoryService(txManager, mockSvc.NewMockStockAlertNotifier(t), newDiscardLogger())

	updated, err := svc.Restock(ctx, scope, product.ID, &usecase.RestockInput{
		Quantity:  50,
		Reference: "PO-2041",
	})
	require.NoError(t, err)
	assert.Equal(t, 53, updated.CurrentStock)
}

func TestInventoryService_AdjustStock_NegativeAdjustmentBelowZeroRejected(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 4)

	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(mockRepo.NewMockMovementRepository(t))

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)

	svc := NewInventoryService(txManager, mockSvc.NewMockStockAlertNotifier(t), newDiscardLogger())

	_, err := svc.AdjustStock(ctx, scope, product.ID, &usecase.AdjustStockInput{
		Quantity: -7,
		Reason:   "breakage",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestInventoryService_AdjustStock_RequiresReason(t *testing.T) {
	svc := NewInventoryService(
		mockRepo.NewMockTransactionManager(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newDiscardLogger(),
	)

	_, err := svc.AdjustStock(context.Background(), cashierScope(uuid.New()), uuid.New(), &usecase.AdjustStockInput{
		Quantity: -1,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestInventoryService_AdjustStock_DeniesForeignShop(t *testing.T) {
	product := testProduct(uuid.New(), 10)
	scope := cashierScope(uuid.New())

	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(mockRepo.NewMockMovementRepository(t))

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)

	svc := NewInventoryService(txManager, mockSvc.NewMockStockAlertNotifier(t), newDiscardLogger())

	_, err := svc.AdjustStock(ctx, scope, product.ID, &usecase.AdjustStockInput{
		Quantity: -1,
		Reason:   "breakage",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
}

func TestInventoryService_AdjustStock_LowStockAfterAdjustmentAlerts(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 8) // reorder level 5

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)

	txManager := newPassthroughTxManager(t, factory)
	notifier := mockSvc.NewMockStockAlertNotifier(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)
	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 4).
		Return(nil)
	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(_ context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, entity.MovementAdjustment, movement.MovementType)
			assert.Equal(t, "stocktake variance", movement.Notes)
		}).
		Return(nil)
	notifier.EXPECT().
		NotifyLowStock(ctx, mock.AnythingOfType("*entity.Product")).
		Return()

	svc := NewInventoryService(txManager, notifier, newDiscardLogger())

	updated, err := svc.AdjustStock(ctx, scope, product.ID, &usecase.AdjustStockInput{
		Quantity: -4,
		Reason:   "stocktake variance",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.CurrentStock)
}
