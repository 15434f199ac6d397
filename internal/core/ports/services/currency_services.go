package services

import (
	"context"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency records.
type CurrencyReaderSvc interface {
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines admin-only mutations on currency records.
type CurrencyWriterSvc interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency applies a partial update. When the buy price changes,
	// change is set to newBuy minus oldBuy, replacing the previous delta.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	DeleteCurrency(ctx context.Context, currencyID string) error

	// SeedDefaultCurrencies resets the list to the hardcoded defaults with
	// fresh timestamps.
	SeedDefaultCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
