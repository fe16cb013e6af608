package postgres

import (
	"context"

	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loyaltyRepository implements the domain.LoyaltyRepository interface using GORM.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

// AppendTransaction persists a new loyalty ledger entry.
func (repo *loyaltyRepository) AppendTransaction(ctx context.Context, transaction *entity.LoyaltyTransaction) error {
	transactionM := fromLoyaltyTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("loyalty transaction references unknown customer or reward")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append loyalty transaction")
	}

	return nil
}

// FindTransactionsByCustomer retrieves a customer's ledger, newest first.
func (repo *loyaltyRepository) FindTransactionsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.LoyaltyTransaction, error) {
	var models []model.LoyaltyTransactionModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty transactions")
	}

	transactions := make([]*entity.LoyaltyTransaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, toLoyaltyTransactionDomain(&models[i]))
	}

	return transactions, nil
}

// CountRedemptions counts prior redeemed entries for a customer and reward.
func (repo *loyaltyRepository) CountRedemptions(ctx context.Context, customerID, rewardID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LoyaltyTransactionModel{}).
		Where("customer_id = ? AND reward_id = ? AND type = ?",
			customerID, rewardID, string(entity.LoyaltyRedeemed)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count redemptions")
	}

	return int(count), nil
}

// FindRewardByID retrieves a reward by its unique ID.
func (repo *loyaltyRepository) FindRewardByID(ctx context.Context, id uuid.UUID) (*entity.LoyaltyReward, error) {
	var rewardM model.LoyaltyRewardModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rewardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by id")
	}

	return toLoyaltyRewardDomain(&rewardM), nil
}

func toLoyaltyTransactionDomain(data *model.LoyaltyTransactionModel) *entity.LoyaltyTransaction {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyTransaction{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Type:         entity.LoyaltyTransactionType(data.Type),
		Points:       data.Points,
		BalanceAfter: data.BalanceAfter,
		SaleID:       data.SaleID,
		RewardID:     data.RewardID,
		Description:  data.Description,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}

func fromLoyaltyTransactionDomain(data *entity.LoyaltyTransaction) *model.LoyaltyTransactionModel {
	if data == nil {
		return nil
	}

	return &model.LoyaltyTransactionModel{
		ID:           data.ID,
		CustomerID:   data.CustomerID,
		Type:         string(data.Type),
		Points:       data.Points,
		BalanceAfter: data.BalanceAfter,
		SaleID:       data.SaleID,
		RewardID:     data.RewardID,
		Description:  data.Description,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}

func toLoyaltyRewardDomain(data *model.LoyaltyRewardModel) *entity.LoyaltyReward {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyReward{
		ID:                 data.ID,
		Name:               data.Name,
		PointsRequired:     data.PointsRequired,
		DiscountType:       entity.RewardDiscountType(data.DiscountType),
		DiscountValue:      data.DiscountValue,
		MinPurchase:        data.MinPurchase,
		MaxUsesPerCustomer: data.MaxUsesPerCustomer,
		ValidFrom:          data.ValidFrom,
		ValidUntil:         data.ValidUntil,
		IsActive:           data.IsActive,
	}
}
