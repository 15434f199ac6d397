package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a listed exchange rate. Code is uppercased on write
// (e.g. "USD"). Change is the delta applied to the buy price by the most
// recent update; it is recomputed on every update, never accumulated, and
// starts at zero.
type Currency struct {
	CurrencyID string          `json:"currencyID"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	BuyPrice   decimal.Decimal `json:"buyPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	Change     decimal.Decimal `json:"change"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
