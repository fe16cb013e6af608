package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShiftStatus is the lifecycle state of a cashier shift.
type ShiftStatus string

const (
	ShiftOpen      ShiftStatus = "open"
	ShiftClosed    ShiftStatus = "closed"
	ShiftSuspended ShiftStatus = "suspended"
)

// Shift is a bounded work session during which a cashier's drawer and sales
// are tracked together. A cashier has at most one open shift at a time. The
// summary fields are written exactly once, at close, and never recomputed.
type Shift struct {
	ID        uuid.UUID  `json:"id"`
	CashierID uuid.UUID  `json:"cashier_id"`
	ShopID    uuid.UUID  `json:"shop_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`

	OpeningCash    decimal.Decimal `json:"opening_cash"`
	ClosingCash    decimal.Decimal `json:"closing_cash"`
	ExpectedCash   decimal.Decimal `json:"expected_cash"`
	CashDifference decimal.Decimal `json:"cash_difference"`

	TotalSales        decimal.Decimal `json:"total_sales"`
	CashSales         decimal.Decimal `json:"cash_sales"`
	CardSales         decimal.Decimal `json:"card_sales"`
	MobileMoneySales  decimal.Decimal `json:"mobile_money_sales"`
	TransactionsCount int             `json:"transactions_count"`

	Status       ShiftStatus `json:"status"`
	OpeningNotes string      `json:"opening_notes,omitempty"`
	ClosingNotes string      `json:"closing_notes,omitempty"`
	ClosedBy     *uuid.UUID  `json:"closed_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShiftActivityType classifies an event recorded during a shift.
type ShiftActivityType string

const (
	ActivityClockIn    ShiftActivityType = "clock_in"
	ActivityClockOut   ShiftActivityType = "clock_out"
	ActivityCashDrop   ShiftActivityType = "cash_drop"
	ActivityCashPickup ShiftActivityType = "cash_pickup"
	ActivityNote       ShiftActivityType = "note"
)

// ShiftActivity is an append-only log entry of something that happened during
// a shift, such as clocking in or dropping cash to the safe.
type ShiftActivity struct {
	ID           uuid.UUID        `json:"id"`
	ShiftID      uuid.UUID        `json:"shift_id"`
	ActivityType ShiftActivityType `json:"activity_type"`
	Amount       decimal.Decimal  `json:"amount"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
