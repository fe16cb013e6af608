package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoyaltyTransactionType classifies a loyalty ledger entry.
type LoyaltyTransactionType string

const (
	LoyaltyEarned   LoyaltyTransactionType = "earned"
	LoyaltyRedeemed LoyaltyTransactionType = "redeemed"
	LoyaltyExpired  LoyaltyTransactionType = "expired"
	LoyaltyAdjusted LoyaltyTransactionType = "adjusted"
)

// LoyaltyTransaction is an append-only ledger entry mirroring the inventory
// movement pattern. Points is positive for accrual and negative for
// redemption; BalanceAfter is the customer's point total after this entry.
type LoyaltyTransaction struct {
	ID          uuid.UUID              `json:"id"`
	CustomerID  uuid.UUID              `json:"customer_id"`
	Type        LoyaltyTransactionType `json:"type"`
	Points      int                    `json:"points"`
	BalanceAfter int                   `json:"balance_after"`
	SaleID      *uuid.UUID             `json:"sale_id,omitempty"`
	RewardID    *uuid.UUID             `json:"reward_id,omitempty"`
	Description string                 `json:"description,omitempty"`
	CreatedBy   uuid.UUID              `json:"created_by"`
	CreatedAt   time.Time              `json:"created_at"`
}

// RewardDiscountType is how a redeemed reward discounts a purchase.
type RewardDiscountType string

const (
	DiscountPercentage RewardDiscountType = "percentage"
	DiscountFixed      RewardDiscountType = "fixed"
)

// LoyaltyReward is a redemption option in the reward catalog. Catalog
// management lives elsewhere; the engine only reads rewards to validate and
// apply redemptions.
type LoyaltyReward struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	PointsRequired int                `json:"points_required"`
	DiscountType   RewardDiscountType `json:"discount_type"`
	DiscountValue  decimal.Decimal    `json:"discount_value"`
	MinPurchase    decimal.Decimal    `json:"min_purchase"`
	// MaxUsesPerCustomer of zero means unlimited.
	MaxUsesPerCustomer int        `json:"max_uses_per_customer"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	IsActive           bool       `json:"is_active"`
}

// DiscountFor computes the monetary discount this reward grants on a purchase.
func (r *LoyaltyReward) DiscountFor(purchaseAmount decimal.Decimal) decimal.Decimal {
	if r.DiscountType == DiscountPercentage {
		return purchaseAmount.Mul(r.DiscountValue).Div(decimal.NewFromInt(100))
	}

	return r.DiscountValue
}
