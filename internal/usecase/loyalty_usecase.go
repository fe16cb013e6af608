package usecase

import (
	"context"

	"tillpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AwardPointsInput is the request to accrue points for a completed sale.
// The caller triggers accrual explicitly after sale completion; the sale
// state machine does not award points on its own.
type AwardPointsInput struct {
	CustomerID uuid.UUID       `json:"customer_id" validate:"required"`
	SaleID     *uuid.UUID      `json:"sale_id"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
}

// AwardPointsResult reports the accrual outcome.
type AwardPointsResult struct {
	PointsEarned int         `json:"points_earned"`
	TotalPoints  int         `json:"total_points"`
	Tier         entity.Tier `json:"tier"`
}

// RedeemRewardInput is the request to redeem points for a reward.
type RedeemRewardInput struct {
	CustomerID     uuid.UUID       `json:"customer_id" validate:"required"`
	RewardID       uuid.UUID       `json:"reward_id" validate:"required"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
}

// RedeemRewardResult reports the redemption outcome.
type RedeemRewardResult struct {
	PointsRedeemed  int             `json:"points_redeemed"`
	RemainingPoints int             `json:"remaining_points"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
}

// LoyaltyUsecase converts completed sales into point accrual and handles
// reward redemption against the loyalty ledger.
type LoyaltyUsecase interface {
	// AwardPoints accrues points for a purchase amount, updates the
	// customer's spend, visit and tier state, and appends a ledger entry —
	// all in one transaction.
	AwardPoints(ctx context.Context, scope entity.AccessScope, input *AwardPointsInput) (*AwardPointsResult, error)

	// RedeemReward validates point sufficiency, minimum purchase, the
	// reward's validity window and the per-customer usage cap before
	// deducting points and appending a negative ledger entry.
	RedeemReward(ctx context.Context, scope entity.AccessScope, input *RedeemRewardInput) (*RedeemRewardResult, error)
}
