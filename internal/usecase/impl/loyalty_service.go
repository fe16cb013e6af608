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
	"github.com/shopspring/decimal"
)

type loyaltyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewLoyaltyService creates the loyalty accrual and redemption service.
func NewLoyaltyService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.LoyaltyUsecase {
	return &loyaltyService{
		txManager: txManager,
		logger:    logger,
	}
}

// AwardPoints accrues points for a purchase. The customer row is locked for
// the whole mutation so two concurrent accruals serialize; points use the
// tier the customer held going into the purchase, then the tier is recomputed
// from the new cumulative spend.
func (s *loyaltyService) AwardPoints(ctx context.Context, scope entity.AccessScope, input *usecase.AwardPointsInput) (*usecase.AwardPointsResult, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerrors.ErrValidation.WithDetails("amount must be positive")
	}

	var result *usecase.AwardPointsResult

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		customerRepo := f.NewCustomerRepository()
		loyaltyRepo := f.NewLoyaltyRepository()
		saleRepo := f.NewSaleRepository()

		customer, err := customerRepo.FindCustomerForUpdate(ctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("customer %s not found", input.CustomerID))
			}

			return errors.Wrap(err, "failed to lock customer")
		}
		if !customer.IsActive {
			return domainerrors.ErrValidation.WithDetails("customer is inactive")
		}

		// A stale sale reference downgrades to an unlinked accrual rather
		// than failing the whole award.
		saleID := input.SaleID
		if saleID != nil {
			if _, err := saleRepo.FindSaleByID(ctx, *saleID); err != nil {
				if !errors.Is(err, repository.ErrSaleNotFound) {
					return errors.Wrap(err, "failed to verify sale reference")
				}
				s.logger.Warn("accrual references unknown sale, recording unlinked",
					slog.String("customer_id", customer.ID.String()),
					slog.String("sale_id", saleID.String()),
				)
				saleID = nil
			}
		}

		points := customer.EarnPoints(input.Amount)
		now := time.Now()

		customer.LoyaltyPoints += points
		customer.TotalSpent = customer.TotalSpent.Add(input.Amount)
		customer.VisitsCount++
		customer.LastVisit = &now
		customer.Tier = entity.TierForSpend(customer.TotalSpent)
		customer.UpdatedAt = now

		if err := customerRepo.UpdateLoyaltyState(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to update customer loyalty state")
		}

		transaction := &entity.LoyaltyTransaction{
			ID:           uuid.New(),
			CustomerID:   customer.ID,
			Type:         entity.LoyaltyEarned,
			Points:       points,
			BalanceAfter: customer.LoyaltyPoints,
			SaleID:       saleID,
			Description:  fmt.Sprintf("Points earned on purchase of %s", input.Amount.StringFixed(2)),
			CreatedBy:    scope.UserID,
			CreatedAt:    now,
		}
		if err := loyaltyRepo.AppendTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to append loyalty transaction")
		}

		result = &usecase.AwardPointsResult{
			PointsEarned: points,
			TotalPoints:  customer.LoyaltyPoints,
			Tier:         customer.Tier,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RedeemReward deducts points for a reward after validating sufficiency, the
// reward's minimum purchase, its validity window and the per-customer usage
// cap. The deduction and the negative ledger entry commit together.
func (s *loyaltyService) RedeemReward(ctx context.Context, scope entity.AccessScope, input *usecase.RedeemRewardInput) (*usecase.RedeemRewardResult, error) {
	var result *usecase.RedeemRewardResult

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		customerRepo := f.NewCustomerRepository()
		loyaltyRepo := f.NewLoyaltyRepository()

		customer, err := customerRepo.FindCustomerForUpdate(ctx, input.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("customer %s not found", input.CustomerID))
			}

			return errors.Wrap(err, "failed to lock customer")
		}
		if !customer.IsActive {
			return domainerrors.ErrValidation.WithDetails("customer is inactive")
		}

		reward, err := loyaltyRepo.FindRewardByID(ctx, input.RewardID)
		if err != nil {
			if errors.Is(err, repository.ErrRewardNotFound) {
				return domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("reward %s not found", input.RewardID))
			}

			return errors.Wrap(err, "failed to find reward")
		}

		if err := validateRedemption(ctx, loyaltyRepo, customer, reward, input.PurchaseAmount); err != nil {
			return err
		}

		now := time.Now()
		customer.LoyaltyPoints -= reward.PointsRequired
		customer.UpdatedAt = now

		if err := customerRepo.UpdateLoyaltyState(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to update customer loyalty state")
		}

		transaction := &entity.LoyaltyTransaction{
			ID:           uuid.New(),
			CustomerID:   customer.ID,
			Type:         entity.LoyaltyRedeemed,
			Points:       -reward.PointsRequired,
			BalanceAfter: customer.LoyaltyPoints,
			RewardID:     &reward.ID,
			Description:  fmt.Sprintf("Redeemed reward: %s", reward.Name),
			CreatedBy:    scope.UserID,
			CreatedAt:    now,
		}
		if err := loyaltyRepo.AppendTransaction(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to append loyalty transaction")
		}

		result = &usecase.RedeemRewardResult{
			PointsRedeemed:  reward.PointsRequired,
			RemainingPoints: customer.LoyaltyPoints,
			DiscountAmount:  reward.DiscountFor(input.PurchaseAmount),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func validateRedemption(ctx context.Context, loyaltyRepo repository.LoyaltyRepository, customer *entity.Customer, reward *entity.LoyaltyReward, purchaseAmount decimal.Decimal) error {
	if !reward.IsActive {
		return domainerrors.ErrValidation.WithDetails("reward is not active")
	}

	now := time.Now()
	if reward.ValidFrom != nil && now.Before(*reward.ValidFrom) {
		return domainerrors.ErrValidation.WithDetails("reward is not yet valid")
	}
	if reward.ValidUntil != nil && now.After(*reward.ValidUntil) {
		return domainerrors.ErrValidation.WithDetails("reward has expired")
	}

	if customer.LoyaltyPoints < reward.PointsRequired {
		return domainerrors.ErrInsufficientPoints.WithDetails(fmt.Sprintf(
			"reward requires %d points, customer has %d", reward.PointsRequired, customer.LoyaltyPoints,
		))
	}

	if purchaseAmount.LessThan(reward.MinPurchase) {
		return domainerrors.ErrValidation.WithDetails(fmt.Sprintf(
			"reward requires a minimum purchase of %s", reward.MinPurchase.StringFixed(2),
		))
	}

	if reward.MaxUsesPerCustomer > 0 {
		uses, err := loyaltyRepo.CountRedemptions(ctx, customer.ID, reward.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count prior redemptions")
		}
		if uses >= reward.MaxUsesPerCustomer {
			return domainerrors.ErrValidation.WithDetails("reward usage limit reached for this customer")
		}
	}

	return nil
}
