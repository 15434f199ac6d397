package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdout/abushala-backend/internal/apperrors"
	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

type CurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for currency records.
func NewCurrencyRepository(pool *pgxpool.Pool) *CurrencyRepository {
	return &CurrencyRepository{pool: pool}
}

var _ ports.CurrencyRepository = (*CurrencyRepository)(nil)

const currencyColumns = "currency_id, name, code, buy_price, sell_price, change, created_at, updated_at"

func (r *CurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (currency_id, name, code, buy_price, sell_price, change, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		currency.CurrencyID,
		currency.Name,
		currency.Code,
		currency.BuyPrice,
		currency.SellPrice,
		currency.Change,
		currency.CreatedAt,
		currency.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicateCode
		}
		return fmt.Errorf("failed to save currency %s: %w", currency.Code, err)
	}
	return nil
}

func (r *CurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1;`
	var currency domain.Currency
	err := r.pool.QueryRow(ctx, query, currencyID).Scan(
		&currency.CurrencyID,
		&currency.Name,
		&currency.Code,
		&currency.BuyPrice,
		&currency.SellPrice,
		&currency.Change,
		&currency.CreatedAt,
		&currency.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %s: %w", currencyID, err)
	}
	return &currency, nil
}

// ListCurrencies returns all currencies in creation order, the order the
// storefront table displays them in.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY created_at ASC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Name,
			&currency.Code,
			&currency.BuyPrice,
			&currency.SellPrice,
			&currency.Change,
			&currency.CreatedAt,
			&currency.UpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}

func (r *CurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		UPDATE currencies
		SET name = $1, code = $2, buy_price = $3, sell_price = $4, change = $5, updated_at = $6
		WHERE currency_id = $7;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		currency.Name,
		currency.Code,
		currency.BuyPrice,
		currency.SellPrice,
		currency.Change,
		currency.UpdatedAt,
		currency.CurrencyID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrDuplicateCode
		}
		return fmt.Errorf("failed to update currency %s: %w", currency.CurrencyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1;`, currencyID)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceAllCurrencies swaps the full list inside one transaction, matching
// the whole-collection snapshot write of the storefront's refresh action.
func (r *CurrencyRepository) ReplaceAllCurrencies(ctx context.Context, currencies []domain.Currency) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM currencies;`); err != nil {
		return fmt.Errorf("failed to clear currencies: %w", err)
	}

	query := `
		INSERT INTO currencies (currency_id, name, code, buy_price, sell_price, change, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, currency := range currencies {
		_, err := tx.Exec(ctx, query,
			currency.CurrencyID,
			currency.Name,
			currency.Code,
			currency.BuyPrice,
			currency.SellPrice,
			currency.Change,
			currency.CreatedAt,
			currency.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert currency %s: %w", currency.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit currency replacement: %w", err)
	}
	return nil
}
