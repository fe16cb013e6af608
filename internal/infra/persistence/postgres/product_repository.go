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

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository. The db
// handle may be a transaction; repositories created through the
// RepositoryFactory always receive one.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindProductByID retrieves a single product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindProductForUpdate retrieves a product while taking a FOR UPDATE row lock.
// The lock is held until the surrounding transaction commits or rolls back.
func (repo *productRepository) FindProductForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product for update")
	}

	return toProductDomain(&productM), nil
}

// UpdateStock sets the product's current stock to the given value.
func (repo *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, currentStock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"current_stock": currentStock,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientStock.WrapMessage("stock check constraint violated")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:           data.ID,
		ShopID:       data.ShopID,
		SKU:          data.SKU,
		Name:         data.Name,
		UnitPrice:    data.UnitPrice,
		CurrentStock: data.CurrentStock,
		ReorderLevel: data.ReorderLevel,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
