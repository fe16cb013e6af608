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
	"gorm.io/gorm/clause"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerForUpdate retrieves a customer while taking a FOR UPDATE row
// lock so that concurrent point accruals and redemptions serialize.
func (repo *customerRepository) FindCustomerForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to lock customer for update")
	}

	return toCustomerDomain(&customerM), nil
}

// UpdateLoyaltyState persists points, spend, visit and tier changes.
func (repo *customerRepository) UpdateLoyaltyState(ctx context.Context, customer *entity.Customer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"loyalty_points": customer.LoyaltyPoints,
			"tier":           string(customer.Tier),
			"total_spent":    customer.TotalSpent,
			"visits_count":   customer.VisitsCount,
			"last_visit":     customer.LastVisit,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientPoints.WrapMessage("points balance check constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer loyalty state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Phone:         data.Phone,
		LoyaltyPoints: data.LoyaltyPoints,
		Tier:          entity.Tier(data.Tier),
		TotalSpent:    data.TotalSpent,
		VisitsCount:   data.VisitsCount,
		LastVisit:     data.LastVisit,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
