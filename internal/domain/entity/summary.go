package entity

import "github.com/shopspring/decimal"

// SalesSummary is the aggregation of completed sales over a shift window,
// grouped by payment method. Only cash sales affect the physical drawer.
type SalesSummary struct {
	Total             decimal.Decimal `json:"total"`
	Cash              decimal.Decimal `json:"cash"`
	Card              decimal.Decimal `json:"card"`
	MobileMoney       decimal.Decimal `json:"mobile_money"`
	TransactionsCount int             `json:"transactions_count"`
}
