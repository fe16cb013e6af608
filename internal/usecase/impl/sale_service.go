// Package impl contains the use case service implementations.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tillpoint/config"
	"tillpoint/internal/domain/entity"
	domainerrors "tillpoint/internal/domain/errors"
	"tillpoint/internal/domain/repository"
	"tillpoint/internal/domain/service"
	"tillpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type saleService struct {
	txManager repository.TransactionManager
	saleRepo  repository.SaleRepository
	gateway   service.PaymentGateway
	qrcodeSvc service.QRCodeService
	notifier  service.StockAlertNotifier
	cfg       *config.Config
	logger    *slog.Logger
}

// NewSaleService creates the sale transaction orchestrator.
func NewSaleService(
	txManager repository.TransactionManager,
	saleRepo repository.SaleRepository,
	gateway service.PaymentGateway,
	qrcodeSvc service.QRCodeService,
	notifier service.StockAlertNotifier,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SaleUsecase {
	return &saleService{
		txManager: txManager,
		saleRepo:  saleRepo,
		gateway:   gateway,
		qrcodeSvc: qrcodeSvc,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateSale turns a cart into a committed sale. Stock deduction, sale and
// item creation and the movement appends happen in one transaction; the
// outbound payment call stays outside the transaction so product row locks
// are never held across network I/O.
func (s *saleService) CreateSale(ctx context.Context, scope entity.AccessScope, input *usecase.CreateSaleInput) (*usecase.CreateSaleResult, error) {
	if err := validateCart(input); err != nil {
		return nil, err
	}

	if !scope.CanAccessShop(input.ShopID) {
		return nil, domainerrors.ErrAccessDenied
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New(),
		ShopID:        input.ShopID,
		CashierID:     scope.UserID,
		PaymentMethod: input.PaymentMethod,
		Status:        entity.SaleStatusPending,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var lowStock []*entity.Product

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		productRepo := f.NewProductRepository()
		movementRepo := f.NewMovementRepository()
		saleRepo := f.NewSaleRepository()

		// Lock phase: acquire every product row in ascending ID order so
		// two concurrent carts sharing products never deadlock, and
		// validate the whole cart before writing anything.
		locked, deductions, err := lockAndValidateStock(ctx, productRepo, input)
		if err != nil {
			return err
		}

		total := decimal.Zero
		items := make([]entity.SaleItem, 0, len(input.Items))
		for _, line := range input.Items {
			subtotal := entity.LineSubtotal(line.UnitPrice, line.Quantity, line.Discount)
			items = append(items, entity.SaleItem{
				ID:        uuid.New(),
				SaleID:    sale.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Discount:  line.Discount,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}
		if !total.IsPositive() {
			return domainerrors.ErrValidation.WithDetails("total amount must be positive")
		}
		sale.TotalAmount = total
		sale.Items = items

		if err := saleRepo.CreateSale(ctx, sale); err != nil {
			return errors.Wrap(err, "failed to create sale")
		}

		// Deduct phase: every decrement is paired with a sale movement in
		// this same transaction.
		for _, product := range locked {
			quantity := deductions[product.ID]
			product.CurrentStock -= quantity
			if err := productRepo.UpdateStock(ctx, product.ID, product.CurrentStock); err != nil {
				return errors.Wrap(err, "failed to update stock")
			}

			movement := &entity.InventoryMovement{
				ID:           uuid.New(),
				ProductID:    product.ID,
				Quantity:     -quantity,
				MovementType: entity.MovementSale,
				ReferenceID:  sale.ID.String(),
				CreatedBy:    scope.UserID,
				CreatedAt:    now,
			}
			if err := movementRepo.AppendMovement(ctx, movement); err != nil {
				return errors.Wrap(err, "failed to append sale movement")
			}

			if product.IsLowStock() {
				lowStock = append(lowStock, product)
			}
		}

		// Cash is confirmed at the counter; the sale completes in the same
		// transaction that deducted stock.
		if input.PaymentMethod == entity.PaymentCash {
			if _, err := saleRepo.TransitionStatus(ctx, sale.ID, entity.SaleStatusPending, entity.SaleStatusCompleted, nil); err != nil {
				return errors.Wrap(err, "failed to complete cash sale")
			}
			sale.Status = entity.SaleStatusCompleted
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Alerts are best effort; a failed dispatch never affects the sale.
	for _, product := range lowStock {
		s.notifier.NotifyLowStock(ctx, product)
	}

	if input.PaymentMethod == entity.PaymentCash {
		return &usecase.CreateSaleResult{Sale: sale}, nil
	}

	return s.initializePayment(ctx, scope, sale)
}

// initializePayment starts the provider round trip for a non-cash sale. On
// gateway failure the sale degrades to failed; the stock movements committed
// above are intentionally left in place (immediate deduction prevents
// overselling during checkout).
func (s *saleService) initializePayment(ctx context.Context, scope entity.AccessScope, sale *entity.Sale) (*usecase.CreateSaleResult, error) {
	amountMinor := sale.TotalAmount.Mul(decimal.NewFromInt(100)).IntPart()
	metadata := map[string]string{
		"sale_id":    sale.ID.String(),
		"shop_id":    sale.ShopID.String(),
		"cashier_id": scope.UserID.String(),
	}

	result, err := s.gateway.Initialize(ctx, sale.CustomerEmail, amountMinor, sale.ID.String(), s.cfg.Paystack.CallbackURL, metadata)
	if err != nil {
		s.logger.Warn("payment initialization failed, sale degraded to failed",
			slog.String("sale_id", sale.ID.String()),
			slog.String("amount", sale.TotalAmount.String()),
			slog.Any("error", err),
		)
		if _, trErr := s.saleRepo.TransitionStatus(ctx, sale.ID, entity.SaleStatusPending, entity.SaleStatusFailed, nil); trErr != nil {
			s.logger.Error("failed to mark sale failed after gateway error",
				slog.String("sale_id", sale.ID.String()),
				slog.Any("error", trErr),
			)
		}

		return nil, domainerrors.ErrGatewayFailure.WithDetails(err.Error())
	}

	if err := s.saleRepo.SetProviderReference(ctx, sale.ID, result.Reference); err != nil {
		return nil, errors.Wrap(err, "failed to store provider reference")
	}
	sale.ProviderReference = result.Reference

	payment := &usecase.PaymentAuthorization{
		AuthorizationURL: result.AuthorizationURL,
		AccessCode:       result.AccessCode,
		Reference:        result.Reference,
	}
	if png, qrErr := s.qrcodeSvc.GeneratePaymentQR(result.AuthorizationURL); qrErr == nil {
		payment.QRCodePNG = png
	}

	return &usecase.CreateSaleResult{Sale: sale, Payment: payment}, nil
}

// GetSale retrieves a sale the scope is allowed to see.
func (s *saleService) GetSale(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("sale %s not found", id))
		}

		return nil, errors.Wrap(err, "failed to find sale")
	}

	if !scope.CanAccessShop(sale.ShopID) {
		return nil, domainerrors.ErrAccessDenied
	}

	return sale, nil
}

// lockAndValidateStock locks every distinct product in the cart and checks
// availability for the accumulated requested quantity, so a cart listing the
// same product on two lines cannot slip past a per-line check. It returns the
// locked products in lock order and the per-product deduction totals. No
// stock is written here; insufficiency anywhere rejects the whole cart.
func lockAndValidateStock(ctx context.Context, productRepo repository.ProductRepository, input *usecase.CreateSaleInput) ([]*entity.Product, map[uuid.UUID]int, error) {
	lines := make([]usecase.SaleLineInput, len(input.Items))
	copy(lines, input.Items)
	sort.Slice(lines, func(i, j int) bool {
		return bytes.Compare(lines[i].ProductID[:], lines[j].ProductID[:]) < 0
	})

	locked := make([]*entity.Product, 0, len(lines))
	byID := make(map[uuid.UUID]*entity.Product, len(lines))
	required := make(map[uuid.UUID]int, len(lines))

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			var err error
			product, err = productRepo.FindProductForUpdate(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return nil, nil, domainerrors.ErrNotFound.WithDetails(fmt.Sprintf("product %s not found", line.ProductID))
				}

				return nil, nil, errors.Wrap(err, "failed to lock product")
			}
			if product.ShopID != input.ShopID {
				return nil, nil, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("product %s does not belong to shop %s", line.ProductID, input.ShopID))
			}
			if !product.IsActive {
				return nil, nil, domainerrors.ErrValidation.WithDetails(fmt.Sprintf("product %s is inactive", product.SKU))
			}
			byID[line.ProductID] = product
			locked = append(locked, product)
		}

		required[line.ProductID] += line.Quantity
		if required[line.ProductID] > product.CurrentStock {
			return nil, nil, domainerrors.ErrInsufficientStock.WithDetails(fmt.Sprintf(
				"product %s: available %d, requested %d",
				product.SKU, product.CurrentStock, required[line.ProductID],
			))
		}
	}

	return locked, required, nil
}

// validateCart rejects malformed carts before any lock is taken.
func validateCart(input *usecase.CreateSaleInput) error {
	if !input.PaymentMethod.Valid() {
		return domainerrors.ErrValidation.WithDetails(fmt.Sprintf("unsupported payment method %q", input.PaymentMethod))
	}
	if len(input.Items) == 0 {
		return domainerrors.ErrValidation.WithDetails("cart must contain at least one item")
	}
	for i, line := range input.Items {
		if line.Quantity < 1 {
			return domainerrors.ErrValidation.WithDetails(fmt.Sprintf("item %d: quantity must be at least 1", i))
		}
		if line.UnitPrice.IsNegative() {
			return domainerrors.ErrValidation.WithDetails(fmt.Sprintf("item %d: unit price must not be negative", i))
		}
		if line.Discount.IsNegative() {
			return domainerrors.ErrValidation.WithDetails(fmt.Sprintf("item %d: discount must not be negative", i))
		}
	}
	if input.PaymentMethod != entity.PaymentCash && input.CustomerEmail == "" {
		return domainerrors.ErrValidation.WithDetails("customer email is required for card and mobile money payments")
	}

	return nil
}
