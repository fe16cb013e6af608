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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// saleRepository implements the domain.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// CreateSale persists a new sale together with its line items.
func (repo *saleRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSale
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("sale references unknown shop or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// FindSaleByID retrieves a sale with its items by ID.
func (repo *saleRepository) FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&saleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by id")
	}

	return toSaleDomain(&saleM), nil
}

// SetProviderReference stores the payment provider reference on a sale.
func (repo *saleRepository) SetProviderReference(ctx context.Context, id uuid.UUID, reference string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"provider_reference": reference,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set provider reference")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSaleNotFound
	}

	return nil
}

// TransitionStatus conditionally moves a sale between statuses with a single
// UPDATE guarded on the source status. A re-delivered confirmation finds zero
// matching rows and reports applied=false rather than overwriting a terminal
// state.
func (repo *saleRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.SaleStatus, providerResponse []byte) (bool, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if providerResponse != nil {
		updates["provider_response"] = providerResponse
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition sale status")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing sale from one that already moved on.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.SaleModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return false, errors.Wrap(err, "failed to check sale existence")
		}
		if count == 0 {
			return false, repository.ErrSaleNotFound
		}

		return false, nil
	}

	return true, nil
}

// saleAggregateRow receives the grouped aggregation at shift close.
type saleAggregateRow struct {
	PaymentMethod string
	Total         decimal.Decimal
	Count         int
}

// SummarizeCompletedSales aggregates completed sales for a cashier and shop
// in a time window, grouped by payment method.
func (repo *saleRepository) SummarizeCompletedSales(ctx context.Context, cashierID, shopID uuid.UUID, from, to time.Time) (*entity.SalesSummary, error) {
	var rows []saleAggregateRow
	err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("payment_method, COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("cashier_id = ? AND shop_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
			cashierID, shopID, string(entity.SaleStatusCompleted), from, to).
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize completed sales")
	}

	summary := &entity.SalesSummary{}
	for _, row := range rows {
		summary.Total = summary.Total.Add(row.Total)
		summary.TransactionsCount += row.Count

		switch entity.PaymentMethod(row.PaymentMethod) {
		case entity.PaymentCash:
			summary.Cash = row.Total
		case entity.PaymentCard:
			summary.Card = row.Total
		case entity.PaymentMobileMoney:
			summary.MobileMoney = row.Total
		}
	}

	return summary, nil
}

func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	items := make([]entity.SaleItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.SaleItem{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			Subtotal:  item.Subtotal,
		})
	}

	return &entity.Sale{
		ID:                data.ID,
		ShopID:            data.ShopID,
		CashierID:         data.CashierID,
		TotalAmount:       data.TotalAmount,
		PaymentMethod:     entity.PaymentMethod(data.PaymentMethod),
		Status:            entity.SaleStatus(data.Status),
		ProviderReference: data.ProviderReference,
		ProviderResponse:  data.ProviderResponse,
		CustomerName:      data.CustomerName,
		CustomerPhone:     data.CustomerPhone,
		CustomerEmail:     data.CustomerEmail,
		Notes:             data.Notes,
		Items:             items,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	items := make([]model.SaleItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.SaleItemModel{
			ID:        item.ID,
			SaleID:    item.SaleID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
			Subtotal:  item.Subtotal,
		})
	}

	return &model.SaleModel{
		ID:                data.ID,
		ShopID:            data.ShopID,
		CashierID:         data.CashierID,
		TotalAmount:       data.TotalAmount,
		PaymentMethod:     string(data.PaymentMethod),
		Status:            string(data.Status),
		ProviderReference: data.ProviderReference,
		ProviderResponse:  data.ProviderResponse,
		CustomerName:      data.CustomerName,
		CustomerPhone:     data.CustomerPhone,
		CustomerEmail:     data.CustomerEmail,
		Notes:             data.Notes,
		Items:             items,
	}
}
