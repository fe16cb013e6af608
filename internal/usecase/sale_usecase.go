// Package usecase defines the application's use case interfaces and their
// request/response types.
package usecase

import (
	"context"

	"tillpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleLineInput is one cart line of a sale request. UnitPrice and Discount
// are frozen into the sale item at creation.
type SaleLineInput struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateSaleInput is the request to create a sale.
type CreateSaleInput struct {
	ShopID        uuid.UUID            `json:"shop_id" validate:"required"`
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required"`
	Items         []SaleLineInput      `json:"items" validate:"required,min=1,dive"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	CustomerEmail string               `json:"customer_email" validate:"omitempty,email"`
	Notes         string               `json:"notes"`
}

// PaymentAuthorization is the provider redirect data returned for non-cash
// sales, plus an optional QR rendering of the authorization URL.
type PaymentAuthorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
	QRCodePNG        []byte `json:"qr_code_png,omitempty"`
}

// CreateSaleResult bundles the created sale with payment authorization data
// when the payment method requires a provider round trip.
type CreateSaleResult struct {
	Sale    *entity.Sale          `json:"sale"`
	Payment *PaymentAuthorization `json:"payment,omitempty"`
}

// SaleUsecase is the sale transaction orchestrator.
type SaleUsecase interface {
	// CreateSale validates a cart, atomically deducts stock and persists the
	// sale, then branches on payment method: cash sales complete
	// immediately, card and mobile money sales initialize a provider
	// transaction and stay pending until reconciliation.
	CreateSale(ctx context.Context, scope entity.AccessScope, input *CreateSaleInput) (*CreateSaleResult, error)

	// GetSale retrieves a sale the scope is allowed to see.
	GetSale(ctx context.Context, scope entity.AccessScope, id uuid.UUID) (*entity.Sale, error)
}
