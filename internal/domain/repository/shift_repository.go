package repository

import (
	"context"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shift persistence.
var (
	// ErrShiftNotFound is returned when a shift is not found.
	ErrShiftNotFound = errors.New("shift not found")
	// ErrOpenShiftExists is returned when the open-shift uniqueness
	// constraint rejects a second open shift for the same cashier.
	ErrOpenShiftExists = errors.New("cashier already has an open shift")
)

// ShiftRepository defines the interface for shift-related database operations.
type ShiftRepository interface {
	// CreateShift persists a new shift. The storage layer enforces at most
	// one open shift per cashier and returns ErrOpenShiftExists otherwise.
	CreateShift(ctx context.Context, shift *entity.Shift) error

	// FindShiftByID retrieves a shift by its unique ID.
	FindShiftByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)

	// FindOpenShiftByCashier retrieves the cashier's open shift, if any.
	FindOpenShiftByCashier(ctx context.Context, cashierID uuid.UUID) (*entity.Shift, error)

	// CloseShift persists the one-time close mutation. The update is
	// conditional on status still being open; it returns ErrShiftNotFound
	// when the shift was already closed by a concurrent caller.
	CloseShift(ctx context.Context, shift *entity.Shift) error

	// AppendActivity records a shift activity log entry.
	AppendActivity(ctx context.Context, activity *entity.ShiftActivity) error
}
