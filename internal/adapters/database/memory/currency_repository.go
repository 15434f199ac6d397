package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

// CurrencyRepository keeps the currency list as an in-process snapshot.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

func NewCurrencyRepository() *CurrencyRepository {
	return &CurrencyRepository{currencies: make(map[string]domain.Currency)}
}

var _ ports.CurrencyRepository = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.currencies {
		if existing.Code == currency.Code {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCode, currency.Code)
		}
	}
	r.currencies[currency.CurrencyID] = currency
	return nil
}

func (r *CurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	currencies := make([]domain.Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		currencies = append(currencies, currency)
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].CreatedAt.Before(currencies[j].CreatedAt)
	})
	return currencies, nil
}

func (r *CurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.currencies[currency.CurrencyID]; !ok {
		return apperrors.ErrNotFound
	}
	for id, existing := range r.currencies {
		if id != currency.CurrencyID && existing.Code == currency.Code {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCode, currency.Code)
		}
	}
	r.currencies[currency.CurrencyID] = currency
	return nil
}

func (r *CurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.currencies[currencyID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.currencies, currencyID)
	return nil
}

func (r *CurrencyRepository) ReplaceAllCurrencies(ctx context.Context, currencies []domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.currencies = make(map[string]domain.Currency, len(currencies))
	for _, currency := range currencies {
		r.currencies[currency.CurrencyID] = currency
	}
	return nil
}
