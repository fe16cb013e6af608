package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type shiftService struct {
	txManager repository.TransactionManager
	shiftRepo repository.ShiftRepository
	logger    *slog.Logger
}

// NewShiftService creates the shift and cash reconciliation service.
func NewShiftService(
	txManager repository.TransactionManager,
	shiftRepo repository.ShiftRepository,
	logger *slog.Logger,
) usecase.ShiftUsecase {
	return &shiftService{
		txManager: txManager,
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// ClockIn opens a shift for the acting cashier. The read before the insert is
// only a fast path for a friendly error; the real guarantee is the storage
// level open-shift uniqueness constraint, surfaced as ErrOpenShiftExists.
func (s *shiftService) ClockIn(ctx context.Context, scope entity.AccessScope, input *usecase.ClockInInput) (*entity.Shift, error) {
	if !scope.CanAccessShop(input.ShopID) {
		return nil, domainerrors.ErrAccessDenied
	}
	if input.OpeningCash.IsNegative() {
		return nil, domainerrors.ErrValidation.WithDetails("opening cash must not be negative")
	}

	existing, err := s.shiftRepo.FindOpenShiftByCashier(ctx, scope.UserID)
	if err != nil && !errors.Is(err, repository.ErrShiftNotFound) {
		return nil, errors.Wrap(err, "failed to look up open shift")
	}
	if existing != nil {
		return nil, domainerrors.ErrInvalidState.WithDetails(fmt.Sprintf("shift %s is already open for this cashier", existing.ID))
	}

	now := time.Now()
	shift := &entity.Shift{
		ID:           uuid.New(),
		CashierID:    scope.UserID,
		ShopID:       input.ShopID,
		StartTime:    now,
		OpeningCash:  input.OpeningCash,
		Status:       entity.ShiftOpen,
		OpeningNotes: input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		shiftRepo := f.NewShiftRepository()

		if err := shiftRepo.CreateShift(ctx, shift); err != nil {
			if errors.Is(err, repository.ErrOpenShiftExists) {
				return domainerrors.ErrInvalidState.WithDetails("cashier already has an open shift")
			}

			return errors.Wrap(err, "failed to create shift")
		}

		activity := &entity.ShiftActivity{
			ID:           uuid.New(),
			ShiftID:      shift.ID,
			ActivityType: entity.ActivityClockIn,
			Amount:       input.OpeningCash,
			Notes:        input.Notes,
			CreatedAt:    now,
		}
		if err := shiftRepo.AppendActivity(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record clock-in activity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shift, nil
}

// CloseShift performs the one-time drawer reconciliation: completed sales in
// the shift window are aggregated by payment method, expected cash is derived
// from the opening float plus cash sales, and the variance against the
// counted drawer is frozen onto the shift. The close is conditional on the
// shift still being open, so two concurrent closes cannot both write a
// summary.
func (s *shiftService) CloseShift(ctx context.Context, scope entity.AccessScope, shiftID uuid.UUID, input *usecase.CloseShiftInput) (*entity.Shift, error) {
	if input.ClosingCash.IsNegative() {
		return nil, domainerrors.ErrValidation.WithDetails("closing cash must not be negative")
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("shift %s not found", shiftID))
		}

		return nil, errors.Wrap(err, "failed to find shift")
	}

	if !canCloseShift(scope, shift) {
		return nil, domainerrors.ErrAccessDenied
	}
	if shift.Status != entity.ShiftOpen {
		return nil, domainerrors.ErrInvalidState.WithDetails(fmt.Sprintf("shift is %s, only open shifts can be closed", shift.Status))
	}

	now := time.Now()

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		shiftRepo := f.NewShiftRepository()
		saleRepo := f.NewSaleRepository()

		summary, err := saleRepo.SummarizeCompletedSales(ctx, shift.CashierID, shift.ShopID, shift.StartTime, now)
		if err != nil {
			return errors.Wrap(err, "failed to summarize shift sales")
		}

		shift.EndTime = &now
		shift.ClosingCash = input.ClosingCash
		shift.ExpectedCash = shift.OpeningCash.Add(summary.Cash)
		shift.CashDifference = input.ClosingCash.Sub(shift.ExpectedCash)
		shift.TotalSales = summary.Total
		shift.CashSales = summary.Cash
		shift.CardSales = summary.Card
		shift.MobileMoneySales = summary.MobileMoney
		shift.TransactionsCount = summary.TransactionsCount
		shift.Status = entity.ShiftClosed
		shift.ClosingNotes = input.Notes
		shift.ClosedBy = &scope.UserID
		shift.UpdatedAt = now

		if err := shiftRepo.CloseShift(ctx, shift); err != nil {
			if errors.Is(err, repository.ErrShiftNotFound) {
				return domainerrors.ErrInvalidState.WithDetails("shift was closed by another request")
			}

			return errors.Wrap(err, "failed to close shift")
		}

		activity := &entity.ShiftActivity{
			ID:           uuid.New(),
			ShiftID:      shift.ID,
			ActivityType: entity.ActivityClockOut,
			Amount:       input.ClosingCash,
			Notes:        input.Notes,
			CreatedAt:    now,
		}
		if err := shiftRepo.AppendActivity(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to record clock-out activity")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !shift.CashDifference.IsZero() {
		s.logger.Warn("shift closed with drawer variance",
			slog.String("shift_id", shift.ID.String()),
			slog.String("expected_cash", shift.ExpectedCash.String()),
			slog.String("closing_cash", shift.ClosingCash.String()),
			slog.String("difference", shift.CashDifference.String()),
		)
	}

	return shift, nil
}

// GetShift retrieves a shift the scope is allowed to see.
func (s *shiftService) GetShift(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("shift %s not found", id))
		}

		return nil, errors.Wrap(err, "failed to find shift")
	}

	if shift.CashierID != scope.UserID && !scope.CanAccessShop(shift.ShopID) {
		return nil, domainerrors.ErrAccessDenied
	}

	return shift, nil
}

// canCloseShift allows the owning cashier, plus managers and admins with
// access to the shift's shop.
func canCloseShift(scope entity.AccessScope, shift *entity.Shift) bool {
	if scope.UserID == shift.CashierID {
		return true
	}
	if scope.Role == entity.RoleAdmin || scope.Role == entity.RoleManager {
		return scope.CanAccessShop(shift.ShopID)
	}

	return false
}
