package impl

import (
	"context"
	"testing"
	"time"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	mockRepo "tillpoint/internal/mocks/repository"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openShift(cashierID, shopID uuid.UUID) *entity.Shift {
	return &entity.Shift{
		ID:          uuid.New(),
		CashierID:   cashierID,
		ShopID:      shopID,
		StartTime:   time.Now().Add(-8 * time.Hour),
		OpeningCash: decimal.NewFromInt(100),
		Status:      entity.ShiftOpen,
	}
}

func TestShiftService_ClockIn_OpensShiftWithActivity(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	txShiftRepo := mockRepo.NewMockShiftRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShiftRepository().Return(txShiftRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	shiftRepo.EXPECT().
		FindOpenShiftByCashier(ctx, scope.UserID).
		Return(nil, repository.ErrShiftNotFound)

	txShiftRepo.EXPECT().
		CreateShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Run(func(_ context.Context, shift *entity.Shift) {
			assert.Equal(t, scope.UserID, shift.CashierID)
			assert.Equal(t, entity.ShiftOpen, shift.Status)
		}).
		Return(nil)
	txShiftRepo.EXPECT().
		AppendActivity(ctx, mock.AnythingOfType("*entity.ShiftActivity")).
		Run(func(_ context.Context, activity *entity.ShiftActivity) {
			assert.Equal(t, entity.ActivityClockIn, activity.ActivityType)
			assert.True(t, decimal.NewFromInt(150).Equal(activity.Amount))
		}).
		Return(nil)

	svc := NewShiftService(txManager, shiftRepo, newDiscardLogger())

	shift, err := svc.ClockIn(ctx, scope, &usecase.ClockInInput{
		ShopID:      shopID,
		OpeningCash: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShiftOpen, shift.Status)
	assert.True(t, decimal.NewFromInt(150).Equal(shift.OpeningCash))
}

func TestShiftService_ClockIn_RejectsSecondOpenShift(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	ctx := context.Background()

	shiftRepo.EXPECT().
		FindOpenShiftByCashier(ctx, scope.UserID).
		Return(openShift(scope.UserID, shopID), nil)

	svc := NewShiftService(mockRepo.NewMockTransactionManager(t), shiftRepo, newDiscardLogger())

	_, err := svc.ClockIn(ctx, scope, &usecase.ClockInInput{ShopID: shopID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestShiftService_ClockIn_ConstraintRaceSurfacesInvalidState(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	txShiftRepo := mockRepo.NewMockShiftRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShiftRepository().Return(txShiftRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	// Fast path sees nothing, but a concurrent clock-in wins the insert and
	// the partial unique index rejects ours.
	shiftRepo.EXPECT().
		FindOpenShiftByCashier(ctx, scope.UserID).
		Return(nil, repository.ErrShiftNotFound)
	txShiftRepo.EXPECT().
		CreateShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Return(repository.ErrOpenShiftExists)

	svc := NewShiftService(txManager, shiftRepo, newDiscardLogger())

	_, err := svc.ClockIn(ctx, scope, &usecase.ClockInInput{ShopID: shopID})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestShiftService_ClockIn_RejectsNegativeOpeningCash(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)

	svc := NewShiftService(mockRepo.NewMockTransactionManager(t), mockRepo.NewMockShiftRepository(t), newDiscardLogger())

	_, err := svc.ClockIn(context.Background(), scope, &usecase.ClockInInput{
		ShopID:      shopID,
		OpeningCash: decimal.NewFromInt(-1),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestShiftService_CloseShift_ReconcilesDrawer(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	shift := openShift(scope.UserID, shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	txShiftRepo := mockRepo.NewMockShiftRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShiftRepository().Return(txShiftRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	shiftRepo.EXPECT().
		FindShiftByID(ctx, shift.ID).
		Return(shift, nil)

	txSaleRepo.EXPECT().
		SummarizeCompletedSales(ctx, shift.CashierID, shift.ShopID, shift.StartTime, mock.AnythingOfType("time.Time")).
		Return(&entity.SalesSummary{
			Total:             decimal.NewFromInt(900),
			Cash:              decimal.NewFromInt(400),
			Card:              decimal.NewFromInt(350),
			MobileMoney:       decimal.NewFromInt(150),
			TransactionsCount: 42,
		}, nil)
	txShiftRepo.EXPECT().
		CloseShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Return(nil)
	txShiftRepo.EXPECT().
		AppendActivity(ctx, mock.AnythingOfType("*entity.ShiftActivity")).
		Run(func(_ context.Context, activity *entity.ShiftActivity) {
			assert.Equal(t, entity.ActivityClockOut, activity.ActivityType)
		}).
		Return(nil)

	svc := NewShiftService(txManager, shiftRepo, newDiscardLogger())

	closed, err := svc.CloseShift(ctx, scope, shift.ID, &usecase.CloseShiftInput{
		ClosingCash: decimal.NewFromInt(495),
	})
	require.NoError(t, err)

	// Expected cash is the opening float plus cash sales; the drawer is 5
	// short.
	assert.True(t, decimal.NewFromInt(500).Equal(closed.ExpectedCash), "expected cash %s", closed.ExpectedCash)
	assert.True(t, decimal.NewFromInt(-5).Equal(closed.CashDifference), "difference %s", closed.CashDifference)
	assert.True(t, decimal.NewFromInt(900).Equal(closed.TotalSales))
	assert.Equal(t, 42, closed.TransactionsCount)
	assert.Equal(t, entity.ShiftClosed, closed.Status)
	require.NotNil(t, closed.ClosedBy)
	assert.Equal(t, scope.UserID, *closed.ClosedBy)
	require.NotNil(t, closed.EndTime)
}

func TestShiftService_CloseShift_AlreadyClosedIsInvalidState(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	shift := openShift(scope.UserID, shopID)
	shift.Status = entity.ShiftClosed

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	shiftRepo.EXPECT().
		FindShiftByID(context.Background(), shift.ID).
		Return(shift, nil)

	svc := NewShiftService(mockRepo.NewMockTransactionManager(t), shiftRepo, newDiscardLogger())

	_, err := svc.CloseShift(context.Background(), scope, shift.ID, &usecase.CloseShiftInput{
		ClosingCash: decimal.NewFromInt(100),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestShiftService_CloseShift_ConcurrentCloseLosesConditionalUpdate(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	shift := openShift(scope.UserID, shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	txShiftRepo := mockRepo.NewMockShiftRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShiftRepository().Return(txShiftRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	shiftRepo.EXPECT().
		FindShiftByID(ctx, shift.ID).
		Return(shift, nil)
	txSaleRepo.EXPECT().
		SummarizeCompletedSales(ctx, shift.CashierID, shift.ShopID, shift.StartTime, mock.AnythingOfType("time.Time")).
		Return(&entity.SalesSummary{}, nil)

	// Another request closed the shift between our read and the conditional
	// update.
	txShiftRepo.EXPECT().
		CloseShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Return(repository.ErrShiftNotFound)

	svc := NewShiftService(txManager, shiftRepo, newDiscardLogger())

	_, err := svc.CloseShift(ctx, scope, shift.ID, &usecase.CloseShiftInput{
		ClosingCash: decimal.NewFromInt(100),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestShiftService_CloseShift_OtherCashierDenied(t *testing.T) {
	shopID := uuid.New()
	scope := cashierScope(shopID)
	shift := openShift(uuid.New(), shopID) // owned by someone else

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	shiftRepo.EXPECT().
		FindShiftByID(context.Background(), shift.ID).
		Return(shift, nil)

	svc := NewShiftService(mockRepo.NewMockTransactionManager(t), shiftRepo, newDiscardLogger())

	_, err := svc.CloseShift(context.Background(), scope, shift.ID, &usecase.CloseShiftInput{
		ClosingCash: decimal.NewFromInt(100),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCESS_DENIED", appErr.ErrorCode())
}

func TestShiftService_CloseShift_ManagerWithShopAccessAllowed(t *testing.T) {
	shopID := uuid.New()
	manager := entity.AccessScope{
		UserID:  uuid.New(),
		Role:    entity.RoleManager,
		ShopIDs: []uuid.UUID{shopID},
	}
	shift := openShift(uuid.New(), shopID)

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	txShiftRepo := mockRepo.NewMockShiftRepository(t)
	txSaleRepo := mockRepo.NewMockSaleRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShiftRepository().Return(txShiftRepo)
	factory.EXPECT().NewSaleRepository().Return(txSaleRepo)

	txManager := newPassthroughTxManager(t, factory)
	ctx := context.Background()

	shiftRepo.EXPECT().
		FindShiftByID(ctx, shift.ID).
		Return(shift, nil)
	txSaleRepo.EXPECT().
		SummarizeCompletedSales(ctx, shift.CashierID, shift.ShopID, shift.StartTime, mock.AnythingOfType("time.Time")).
		Return(&entity.SalesSummary{}, nil)
	txShiftRepo.EXPECT().
		CloseShift(ctx, mock.AnythingOfType("*entity.Shift")).
		Return(nil)
	txShiftRepo.EXPECT().
		AppendActivity(ctx, mock.AnythingOfType("*entity.ShiftActivity")).
		Return(nil)

	svc := NewShiftService(txManager, shiftRepo, newDiscardLogger())

	closed, err := svc.CloseShift(ctx, manager, shift.ID, &usecase.CloseShiftInput{
		ClosingCash: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.NotNil(t, closed.ClosedBy)
	assert.Equal(t, manager.UserID, *closed.ClosedBy)
}

func TestShiftService_GetShift_OwnerSeesOwnShift(t *testing.T) {
	scope := cashierScope(uuid.New())
	shift := openShift(scope.UserID, uuid.New()) // shop outside scope, owner still allowed

	shiftRepo := mockRepo.NewMockShiftRepository(t)
	shiftRepo.EXPECT().
		FindShiftByID(context.Background(), shift.ID).
		Return(shift, nil)

	svc := NewShiftService(mockRepo.NewMockTransactionManager(t), shiftRepo, newDiscardLogger())

	got, err := svc.GetShift(context.Background(), scope, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, shift.ID, got.ID)
}
