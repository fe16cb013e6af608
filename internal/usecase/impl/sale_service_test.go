package impl

import (
	"context"
	"testing"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/service"
	mockRepo "tillpoint/internal/mocks/repository"
	mockSvc "tillpoint/internal/mocks/service"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cashierScope(shopID uuid.UUID) entity.AccessScope {
	return entity.AccessScope{
		UserID:  uuid.New(),
		Role:    entity.RoleCashier,
		ShopIDs: []uuid.UUID{shopID},
	}
}

func testProduct(shopID uuid.UUID, stock int) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		ShopID:       shopID,
		SKU:          "SKU-001",
		Name:         "Bottled Water 500ml",
		UnitPrice:    decimal.NewFromFloat(2.50),
		CurrentStock: stock,
		ReorderLevel: 5,
		IsActive:     true,
	}
}

func TestSaleService_CreateSale_CashCompletesImmediately(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 20)

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)

	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)

	txSaleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(nil)

	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 17).
		Return(nil)

	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Run(func(_ context.Context, movement *entity.InventoryMovement) {
			assert.Equal(t, -3, movement.Quantity)
			assert.Equal(t, entity.MovementSale, movement.MovementType)
			assert.Equal(t, scope.UserID, movement.CreatedBy)
		}).
		Return(nil)

	txSaleRepo.EXPECT().
		TransitionStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.SaleStatusPending, entity.SaleStatusCompleted, []byte(nil)).
		Return(true, nil)

	svc := NewSaleService(
		txManager,
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	result, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCash,
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Payment)
	assert.Equal(t, entity.SaleStatusCompleted, result.Sale.Status)
	assert.True(t, decimal.NewFromFloat(7.50).Equal(result.Sale.TotalAmount))
	require.Len(t, result.Sale.Items, 1)
	assert.True(t, decimal.NewFromFloat(7.50).Equal(result.Sale.Items[0].Subtotal))
}

func TestSaleService_CreateSale_InsufficientStockRejectsWholeCart(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 2)

	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(mockRepo.NewMockMovementRepository(t))
	factory.EXPECT().NewSaleRepository().Return(mockRepo.NewMockSaleRepository(t))

	txManager := newPassthroughTxManager(t, factory)

	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)

	svc := NewSaleService(
		txManager,
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCash,
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 5, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "available 2, requested 5")
}

func TestSaleService_CreateSale_DuplicateLinesValidateAgainstCombinedQuantity(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 4)

	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(mockRepo.NewMockMovementRepository(t))
	factory.EXPECT().NewSaleRepository().Return(mockRepo.NewMockSaleRepository(t))

	txManager := newPassthroughTxManager(t, factory)

	ctx := context.Background()

	// The product row is locked once even though it appears on two lines.
	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil).
		Once()

	svc := NewSaleService(
		txManager,
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCash,
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)},
			{ProductID: product.ID, Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestSaleService_CreateSale_DeniesForeignShop(t *testing.T) {
	scope := cashierScope(uuid.New())

	svc := NewSaleService(
		mockRepo.NewMockTransactionManager(t),
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(context.Background(), scope, &usecase.CreateSaleInput{
		ShopID:        uuid.New(),
		PaymentMethod: entity.PaymentCash,
		Items: []usecase.SaleLineInput{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromFloat(1.00)},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
}

func TestSaleService_CreateSale_RejectsNonCashWithoutEmail(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)

	svc := NewSaleService(
		mockRepo.NewMockTransactionManager(t),
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(context.Background(), scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCard,
		Items: []usecase.SaleLineInput{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromFloat(1.00)},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestSaleService_CreateSale_GatewayFailureDegradesSaleToFailed(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 20)

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)
	txSaleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(nil)
	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 18).
		Return(nil)
	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Return(nil)

	gateway.EXPECT().
		Initialize(ctx, "customer@example.com", int64(500), mock.AnythingOfType("string"), "https://api.tillpoint.test/payments/callback", mock.Anything).
		Return(nil, errors.Wrap(service.ErrGatewayUnavailable, "connection refused"))

	// The failed initialization degrades the pending sale to failed; the
	// committed stock movements stay in place.
	saleRepo.EXPECT().
		TransitionStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.SaleStatusPending, entity.SaleStatusFailed, []byte(nil)).
		Return(true, nil)

	svc := NewSaleService(
		txManager,
		saleRepo,
		gateway,
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCard,
		CustomerEmail: "customer@example.com",
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GATEWAY_FAILURE", appErr.ErrorCode())
}

func TestSaleService_CreateSale_NonCashReturnsAuthorizationAndQR(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 20)

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	qrSvc := mockSvc.NewMockQRCodeService(t)

	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)
	txSaleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(nil)
	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 19).
		Return(nil)
	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Return(nil)

	gateway.EXPECT().
		Initialize(ctx, "customer@example.com", int64(250), mock.AnythingOfType("string"), "https://api.tillpoint.test/payments/callback", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ int64, reference, _ string, _ map[string]string) (*service.InitializeResult, error) {
			return &service.InitializeResult{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				AccessCode:       "abc123",
				Reference:        reference,
			}, nil
		})

	saleRepo.EXPECT().
		SetProviderReference(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string")).
		Return(nil)

	qrSvc.EXPECT().
		GeneratePaymentQR("https://checkout.paystack.com/abc123").
		Return([]byte("png-bytes"), nil)

	svc := NewSaleService(
		txManager,
		saleRepo,
		gateway,
		qrSvc,
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	result, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCard,
		CustomerEmail: "customer@example.com",
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 1, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	assert.Equal(t, entity.SaleStatusPending, result.Sale.Status)
	assert.Equal(t, "https://checkout.paystack.com/abc123", result.Payment.AuthorizationURL)
	assert.Equal(t, result.Sale.ID.String(), result.Payment.Reference)
	assert.Equal(t, []byte("png-bytes"), result.Payment.QRCodePNG)
}

func TestSaleService_CreateSale_LowStockTriggersAlertAfterCommit(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	product := testProduct(shopID, 7) // reorder level 5

	productRepo := mockRepo.NewMockProductRepository(t)
	movementRepo := mockRepo.NewMockMovementRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewMovementRepository().Return(movementRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	notifier := mockSvc.NewMockStockAlertNotifier(t)

	ctx := context.Background()

	productRepo.EXPECT().
		FindProductForUpdate(ctx, product.ID).
		Return(product, nil)
	txSaleRepo.EXPECT().
		CreateSale(ctx, mock.AnythingOfType("*entity.Sale")).
		Return(nil)
	productRepo.EXPECT().
		UpdateStock(ctx, product.ID, 4).
		Return(nil)
	movementRepo.EXPECT().
		AppendMovement(ctx, mock.AnythingOfType("*entity.InventoryMovement")).
		Return(nil)
	txSaleRepo.EXPECT().
		TransitionStatus(ctx, mock.AnythingOfType("uuid.UUID"), entity.SaleStatusPending, entity.SaleStatusCompleted, []byte(nil)).
		Return(true, nil)

	notifier.EXPECT().
		NotifyLowStock(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, alerted *entity.Product) {
			assert.Equal(t, product.ID, alerted.ID)
			assert.Equal(t, 4, alerted.CurrentStock)
		}).
		Return()

	svc := NewSaleService(
		txManager,
		mockRepo.NewMockSaleRepository(t),
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		notifier,
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.CreateSale(ctx, scope, &usecase.CreateSaleInput{
		ShopID:        shopID,
		PaymentMethod: entity.PaymentCash,
		Items: []usecase.SaleLineInput{
			{ProductID: product.ID, Quantity: 3, UnitPrice: decimal.NewFromFloat(2.50)},
		},
	})
	require.NoError(t, err)
}

func TestSaleService_GetSale_EnforcesShopAccess(t *testing.T) {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	saleID := uuid.New()

	sale := &entity.Sale{
		ID:     saleID,
		ShopID: uuid.New(),
		Status: entity.SaleStatusCompleted,
	}

	saleRepo.EXPECT().
		FindSaleByID(mock.Anything, saleID).
		Return(sale, nil)

	svc := NewSaleService(
		mockRepo.NewMockTransactionManager(t),
		saleRepo,
		mockSvc.NewMockPaymentGateway(t),
		mockSvc.NewMockQRCodeService(t),
		mockSvc.NewMockStockAlertNotifier(t),
		newTestConfig(),
		newDiscardLogger(),
	)

	_, err := svc.GetSale(context.Background(), cashierScope(uuid.New()), saleID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
}
