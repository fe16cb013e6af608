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

// movementRepository implements the domain.MovementRepository interface using
// GORM. The ledger is insert-only; there is no update or delete path here by
// design of the interface.
type movementRepository struct {
	db *gorm.DB
}

// NewMovementRepository is the constructor for movementRepository.
func NewMovementRepository(db *gorm.DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

// AppendMovement persists a new inventory movement.
func (repo *movementRepository) AppendMovement(ctx context.Context, movement *entity.InventoryMovement) error {
	movementM := fromMovementDomain(movement)

	if err := repo.db.WithContext(ctx).Create(movementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("movement references unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append movement")
	}

	movement.CreatedAt = movementM.CreatedAt

	return nil
}

// FindMovementsByProduct retrieves the movement history for a product, newest first.
func (repo *movementRepository) FindMovementsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.InventoryMovement, error) {
	var models []model.InventoryMovementModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find movements by product")
	}

	movements := make([]*entity.InventoryMovement, 0, len(models))
	for i := range models {
		movements = append(movements, toMovementDomain(&models[i]))
	}

	return movements, nil
}

// SumMovementsByProduct returns the sum of all movement quantities for a product.
func (repo *movementRepository) SumMovementsByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.InventoryMovementModel{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum movements by product")
	}

	return int(total), nil
}

func toMovementDomain(data *model.InventoryMovementModel) *entity.InventoryMovement {
	if data == nil {
		return nil
	}

	return &entity.InventoryMovement{
		ID:           data.ID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		MovementType: entity.MovementType(data.MovementType),
		ReferenceID:  data.ReferenceID,
		Notes:        data.Notes,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}

func fromMovementDomain(data *entity.InventoryMovement) *model.InventoryMovementModel {
	if data == nil {
		return nil
	}

	return &model.InventoryMovementModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		Quantity:     data.Quantity,
		MovementType: string(data.MovementType),
		ReferenceID:  data.ReferenceID,
		Notes:        data.Notes,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}
