package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus is the state of a sale transaction. Pending sales may move to
// completed or failed; both are terminal. Refunded exists as an administrative
// state set outside the transaction engine.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusFailed    SaleStatus = "failed"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s SaleStatus) IsTerminal() bool {
	return s == SaleStatusCompleted || s == SaleStatusFailed || s == SaleStatusRefunded
}

// PaymentMethod is how a sale was paid.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCard        PaymentMethod = "card"
	PaymentMobileMoney PaymentMethod = "mobile_money"
)

// Valid reports whether the payment method is one of the supported values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileMoney:
		return true
	}

	return false
}

// Sale is a committed sales transaction. Its ID doubles as the payment
// provider reference for non-cash sales. After creation only the payment
// reconciliation path may change Status and ProviderResponse.
type Sale struct {
	ID            uuid.UUID       `json:"id"`
	ShopID        uuid.UUID       `json:"shop_id"`
	CashierID     uuid.UUID       `json:"cashier_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        SaleStatus      `json:"status"`

	ProviderReference string `json:"provider_reference,omitempty"`
	ProviderResponse  []byte `json:"-"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	Notes     string     `json:"notes,omitempty"`
	Items     []SaleItem `json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SaleItem is a frozen line item of a sale. Subtotal is computed once at
// creation as unit_price*quantity - discount; later price changes never
// touch historical sales.
type SaleItem struct {
	ID        uuid.UUID       `json:"id"`
	SaleID    uuid.UUID       `json:"sale_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// LineSubtotal computes unit_price*quantity - discount for a line.
func LineSubtotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)
}
