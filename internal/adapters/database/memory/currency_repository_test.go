package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdout/abushala-backend/internal/adapters/database/memory"
	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/services"
)

func newCurrency(code string, createdAt time.Time) domain.Currency {
	return domain.Currency{
		CurrencyID: uuid.NewString(),
		Name:       "عملة تجريبية",
		Code:       code,
		BuyPrice:   decimal.RequireFromString("1.5"),
		SellPrice:  decimal.RequireFromString("1.6"),
		Change:     decimal.Zero,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestCurrencyRepository_SaveCurrency_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	require.NoError(t, repo.SaveCurrency(ctx, newCurrency("USD", time.Now())))

	err := repo.SaveCurrency(ctx, newCurrency("USD", time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCode)
}

func TestCurrencyRepository_UpdateCurrency_CodeCollision(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	usd := newCurrency("USD", time.Now())
	eur := newCurrency("EUR", time.Now())
	require.NoError(t, repo.SaveCurrency(ctx, usd))
	require.NoError(t, repo.SaveCurrency(ctx, eur))

	eur.Code = "USD"
	err := repo.UpdateCurrency(ctx, eur)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateCode)

	// Updating a currency without changing its code is fine.
	usd.BuyPrice = decimal.RequireFromString("2.0")
	assert.NoError(t, repo.UpdateCurrency(ctx, usd))
}

func TestCurrencyRepository_ListCurrencies_CreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	base := time.Now()
	codes := []string{"USD", "EUR", "SDG"}
	for i, code := range codes {
		require.NoError(t, repo.SaveCurrency(ctx, newCurrency(code, base.Add(time.Duration(i)*time.Second))))
	}

	currencies, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 3)
	for i, code := range codes {
		assert.Equal(t, code, currencies[i].Code)
	}
}

func TestCurrencyRepository_ReplaceAllCurrencies_SwapsWholeList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	stray := newCurrency("XXX", time.Now().Add(-time.Hour))
	require.NoError(t, repo.SaveCurrency(ctx, stray))

	defaults := services.DefaultCurrencyList(time.Now())
	require.NoError(t, repo.ReplaceAllCurrencies(ctx, defaults))

	currencies, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, len(defaults))

	// The stray entry is gone and the defaults come back in seed order.
	assert.Equal(t, "USD", currencies[0].Code)
	for _, c := range currencies {
		assert.NotEqual(t, "XXX", c.Code)
	}

	_, err = repo.FindCurrencyByID(ctx, stray.CurrencyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyRepository_DeleteCurrency(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCurrencyRepository()

	usd := newCurrency("USD", time.Now())
	require.NoError(t, repo.SaveCurrency(ctx, usd))
	require.NoError(t, repo.DeleteCurrency(ctx, usd.CurrencyID))

	assert.ErrorIs(t, repo.DeleteCurrency(ctx, usd.CurrencyID), apperrors.ErrNotFound)
}
