package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier is a loyalty classification derived purely from cumulative spend.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Spend thresholds for tier qualification, evaluated highest first.
var (
	platinumThreshold = decimal.NewFromInt(10000)
	goldThreshold     = decimal.NewFromInt(5000)
	silverThreshold   = decimal.NewFromInt(2000)
)

// TierForSpend computes the tier for a cumulative spend amount. The stored
// tier column is only a cache of this function; it is recomputed on every
// loyalty write so it can never drift from total_spent.
func TierForSpend(totalSpent decimal.Decimal) Tier {
	switch {
	case totalSpent.GreaterThanOrEqual(platinumThreshold):
		return TierPlatinum
	case totalSpent.GreaterThanOrEqual(goldThreshold):
		return TierGold
	case totalSpent.GreaterThanOrEqual(silverThreshold):
		return TierSilver
	default:
		return TierBronze
	}
}

// Multiplier returns the points multiplier applied to base points for this tier.
func (t Tier) Multiplier() decimal.Decimal {
	switch t {
	case TierSilver:
		return decimal.NewFromFloat(1.2)
	case TierGold:
		return decimal.NewFromFloat(1.5)
	case TierPlatinum:
		return decimal.NewFromFloat(2.0)
	default:
		return decimal.NewFromInt(1)
	}
}

// Customer is a loyalty program member. LoyaltyPoints never goes negative;
// it is mutated only by point accrual and reward redemption, each of which
// appends a LoyaltyTransaction in the same transaction.
type Customer struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	LoyaltyPoints int             `json:"loyalty_points"`
	Tier          Tier            `json:"tier"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	VisitsCount   int             `json:"visits_count"`
	LastVisit     *time.Time      `json:"last_visit,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// EarnPoints computes the points earned for a purchase amount at the
// customer's current tier: floor(amount/10) base points times the tier
// multiplier, floored again. The multiplier uses the tier the customer held
// going into the purchase; the tier itself is recomputed from the new
// total_spent afterwards.
func (c *Customer) EarnPoints(amount decimal.Decimal) int {
	basePoints := amount.Div(decimal.NewFromInt(10)).IntPart()

	return int(decimal.NewFromInt(basePoints).Mul(c.Tier.Multiplier()).IntPart())
}
