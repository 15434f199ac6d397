package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

type defaultCurrency struct {
	name string
	code string
	buy  string
	sell string
}

// The storefront's hardcoded default list. "Refresh" resets the whole
// collection to these with fresh timestamps.
var defaultCurrencies = []defaultCurrency{
	{name: "دولار أمريكي", code: "USD", buy: "4.85", sell: "4.9"},
	{name: "يورو", code: "EUR", buy: "5.2", sell: "5.25"},
	{name: "جنيه سوداني", code: "SDG", buy: "0.008", sell: "0.009"},
	{name: "جنيه مصري", code: "EGP", buy: "0.1", sell: "0.11"},
	{name: "ريال سعودي", code: "SAR", buy: "1.29", sell: "1.31"},
	{name: "درهم إماراتي", code: "AED", buy: "1.32", sell: "1.34"},
	{name: "دينار تونسي", code: "TND", buy: "1.55", sell: "1.58"},
}

// DefaultCurrencyList materializes the default currencies with fresh ids
// and timestamps and change zeroed.
func DefaultCurrencyList(now time.Time) []domain.Currency {
	currencies := make([]domain.Currency, len(defaultCurrencies))
	for i, d := range defaultCurrencies {
		// Stagger created_at so creation-order listing keeps the seed order.
		createdAt := now.Add(time.Duration(i) * time.Millisecond)
		currencies[i] = domain.Currency{
			CurrencyID: uuid.NewString(),
			Name:       d.name,
			Code:       d.code,
			BuyPrice:   decimal.RequireFromString(d.buy),
			SellPrice:  decimal.RequireFromString(d.sell),
			Change:     decimal.Zero,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		}
	}
	return currencies
}
