package repository

import (
	"context"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for loyalty persistence.
var (
	// ErrRewardNotFound is returned when a loyalty reward is not found.
	ErrRewardNotFound = errors.New("loyalty reward not found")
)

// LoyaltyRepository is the insert-only interface to the loyalty transaction
// ledger plus read access to the reward catalog. Like the inventory movement
// ledger it exposes no update or delete path.
type LoyaltyRepository interface {
	// AppendTransaction persists a new loyalty ledger entry.
	AppendTransaction(ctx context.Context, transaction *entity.LoyaltyTransaction) error

	// FindTransactionsByCustomer retrieves a customer's ledger, newest first.
	FindTransactionsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.LoyaltyTransaction, error)

	// CountRedemptions counts prior redeemed entries for a customer and
	// reward, enforcing the per-customer usage cap.
	CountRedemptions(ctx context.Context, customerID, rewardID uuid.UUID) (int, error)

	// FindRewardByID retrieves an active reward by its unique ID.
	FindRewardByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyReward, error)
}
