package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
)

type CurrencyService struct {
	currencyRepo ports.CurrencyRepository
}

func NewCurrencyService(currencyRepo ports.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func validatePositivePrice(field string, price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return fmt.Errorf("%w: %s must be a positive number", apperrors.ErrValidation, field)
	}
	return nil
}

// CreateCurrency lists a new currency. The code is uppercased, change
// starts at zero and both prices must be positive.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := validatePositivePrice("buyPrice", req.BuyPrice); err != nil {
		return nil, err
	}
	if err := validatePositivePrice("sellPrice", req.SellPrice); err != nil {
		return nil, err
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		Name:       req.Name,
		Code:       strings.ToUpper(req.Code),
		BuyPrice:   req.BuyPrice,
		SellPrice:  req.SellPrice,
		Change:     decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCode) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}
	return currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency applies a partial update. When the buy price changes the
// change field is set to newBuy minus oldBuy, replacing whatever delta the
// previous update left; it is never accumulated.
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	current, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load currency for update: %w", err)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Code != nil {
		updated.Code = strings.ToUpper(*req.Code)
	}
	if req.BuyPrice != nil {
		if err := validatePositivePrice("buyPrice", *req.BuyPrice); err != nil {
			return nil, err
		}
		updated.Change = req.BuyPrice.Sub(current.BuyPrice)
		updated.BuyPrice = *req.BuyPrice
	}
	if req.SellPrice != nil {
		if err := validatePositivePrice("sellPrice", *req.SellPrice); err != nil {
			return nil, err
		}
		updated.SellPrice = *req.SellPrice
	}
	updated.UpdatedAt = time.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.ErrNotFound
		case errors.Is(err, apperrors.ErrDuplicateCode):
			return nil, apperrors.ErrDuplicateCode
		default:
			return nil, fmt.Errorf("failed to update currency: %w", err)
		}
	}

	return &updated, nil
}

func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID string) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	return nil
}

// SeedDefaultCurrencies resets the whole list to the hardcoded defaults
// with fresh timestamps. This is the storefront's "refresh", not an
// upstream sync.
func (s *CurrencyService) SeedDefaultCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := DefaultCurrencyList(time.Now())
	if err := s.currencyRepo.ReplaceAllCurrencies(ctx, currencies); err != nil {
		return nil, fmt.Errorf("failed to seed default currencies: %w", err)
	}
	return currencies, nil
}
