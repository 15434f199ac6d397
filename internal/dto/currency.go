package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to list a new currency.
// Prices must be positive; the service checks the sign since validator tags
// cannot inspect decimal.Decimal.
type CreateCurrencyRequest struct {
	Name      string          `json:"name" binding:"required"`
	Code      string          `json:"code" binding:"required,min=2,max=5"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
}

// UpdateCurrencyRequest defines a partial currency update. Pointer fields
// distinguish omitted fields from zero values.
type UpdateCurrencyRequest struct {
	Name      *string          `json:"name"`
	Code      *string          `json:"code"`
	BuyPrice  *decimal.Decimal `json:"buyPrice"`
	SellPrice *decimal.Decimal `json:"sellPrice"`
}

// CurrencyResponse defines the data returned for a currency record.
type CurrencyResponse struct {
	CurrencyID string          `json:"currencyID"`
	Name       string          `json:"name"`
	Code       string          `json:"code"`
	BuyPrice   decimal.Decimal `json:"buyPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	Change     decimal.Decimal `json:"change"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(currency *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: currency.CurrencyID,
		Name:       currency.Name,
		Code:       currency.Code,
		BuyPrice:   currency.BuyPrice,
		SellPrice:  currency.SellPrice,
		Change:     currency.Change,
		UpdatedAt:  currency.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
