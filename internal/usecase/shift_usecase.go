package usecase

import (
	"context"

	"tillpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClockInInput is the request to open a shift.
type ClockInInput struct {
	ShopID      uuid.UUID       `json:"shop_id" validate:"required"`
	OpeningCash decimal.Decimal `json:"opening_cash"`
	Notes       string          `json:"notes"`
}

// CloseShiftInput is the request to close a shift.
type CloseShiftInput struct {
	ClosingCash decimal.Decimal `json:"closing_cash"`
	Notes       string          `json:"notes"`
}

// ShiftUsecase manages cashier shifts and drawer reconciliation.
type ShiftUsecase interface {
	// ClockIn opens a shift for the acting cashier. A cashier may hold at
	// most one open shift; a second clock-in is rejected.
	ClockIn(ctx context.Context, scope entity.AccessScope, input *ClockInInput) (*entity.Shift, error)

	// CloseShift closes an open shift exactly once: it aggregates completed
	// sales in the shift window by payment method, computes expected cash
	// and drawer variance, and freezes the summary. Closing a shift that is
	// not open is an error, not a recompute.
	CloseShift(ctx context.Context, scope entity.AccessScope, shiftID uuid.UUID, input *CloseShiftInput) (*entity.Shift, error)

	// GetShift retrieves a shift the scope is allowed to see.
	GetShift(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Shift, error)
}
