package postgres

import (
	"context"
	"time"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shiftRepository implements the domain.ShiftRepository interface using GORM.
type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository is the constructor for shiftRepository.
func NewShiftRepository(db *gorm.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

// CreateShift persists a new shift. The partial unique index on open shifts
// turns a concurrent double clock-in into a unique constraint violation,
// surfaced as ErrOpenShiftExists.
func (repo *shiftRepository) CreateShift(ctx context.Context, shift *entity.Shift) error {
	shiftM := fromShiftDomain(shift)

	if err := repo.db.WithContext(ctx).Create(shiftM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOpenShiftExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shift")
	}

	shift.CreatedAt = shiftM.CreatedAt
	shift.UpdatedAt = shiftM.UpdatedAt

	return nil
}

// FindShiftByID retrieves a shift by its unique ID.
func (repo *shiftRepository) FindShiftByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shiftM model.ShiftModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shiftM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find shift by id")
	}

	return toShiftDomain(&shiftM), nil
}

// FindOpenShiftByCashier retrieves the cashier's open shift, if any.
func (repo *shiftRepository) FindOpenShiftByCashier(ctx context.Context, cashierID uuid.UUID) (*entity.Shift, error) {
	var shiftM model.ShiftModel
	err := repo.db.WithContext(ctx).
		Where("cashier_id = ? AND status = ?", cashierID, string(entity.ShiftOpen)).
		First(&shiftM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find open shift")
	}

	return toShiftDomain(&shiftM), nil
}

// CloseShift persists the close-time summary with a single UPDATE guarded on
// the shift still being open.
func (repo *shiftRepository) CloseShift(ctx context.Context, shift *entity.Shift) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Where("id = ? AND status = ?", shift.ID, string(entity.ShiftOpen)).
		Updates(map[string]any{
			"end_time":           shift.EndTime,
			"closing_cash":       shift.ClosingCash,
			"expected_cash":      shift.ExpectedCash,
			"cash_difference":    shift.CashDifference,
			"total_sales":        shift.TotalSales,
			"cash_sales":         shift.CashSales,
			"card_sales":         shift.CardSales,
			"mobile_money_sales": shift.MobileMoneySales,
			"transactions_count": shift.TransactionsCount,
			"status":             string(entity.ShiftClosed),
			"closing_notes":      shift.ClosingNotes,
			"closed_by":          shift.ClosedBy,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to close shift")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShiftNotFound
	}

	return nil
}

// AppendActivity records a shift activity log entry.
func (repo *shiftRepository) AppendActivity(ctx context.Context, activity *entity.ShiftActivity) error {
	activityM := &model.ShiftActivityModel{
		ID:           activity.ID,
		ShiftID:      activity.ShiftID,
		ActivityType: string(activity.ActivityType),
		Amount:       activity.Amount,
		Notes:        activity.Notes,
		CreatedAt:    activity.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShiftNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append shift activity")
	}

	return nil
}

func toShiftDomain(data *model.ShiftModel) *entity.Shift {
	if data == nil {
		return nil
	}

	return &entity.Shift{
		ID:                data.ID,
		CashierID:         data.CashierID,
		ShopID:            data.ShopID,
		StartTime:         data.StartTime,
		EndTime:           data.EndTime,
		OpeningCash:       data.OpeningCash,
		ClosingCash:       data.ClosingCash,
		ExpectedCash:      data.ExpectedCash,
		CashDifference:    data.CashDifference,
		TotalSales:        data.TotalSales,
		CashSales:         data.CashSales,
		CardSales:         data.CardSales,
		MobileMoneySales:  data.MobileMoneySales,
		TransactionsCount: data.TransactionsCount,
		Status:            entity.ShiftStatus(data.Status),
		OpeningNotes:      data.OpeningNotes,
		ClosingNotes:      data.ClosingNotes,
		ClosedBy:          data.ClosedBy,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromShiftDomain(data *entity.Shift) *model.ShiftModel {
	if data == nil {
		return nil
	}

	return &model.ShiftModel{
		ID:                data.ID,
		CashierID:         data.CashierID,
		ShopID:            data.ShopID,
		StartTime:         data.StartTime,
		EndTime:           data.EndTime,
		OpeningCash:       data.OpeningCash,
		ClosingCash:       data.ClosingCash,
		ExpectedCash:      data.ExpectedCash,
		CashDifference:    data.CashDifference,
		TotalSales:        data.TotalSales,
		CashSales:         data.CashSales,
		CardSales:         data.CardSales,
		MobileMoneySales:  data.MobileMoneySales,
		TransactionsCount: data.TransactionsCount,
		Status:            string(data.Status),
		OpeningNotes:      data.OpeningNotes,
		ClosingNotes:      data.ClosingNotes,
		ClosedBy:          data.ClosedBy,
	}
}
