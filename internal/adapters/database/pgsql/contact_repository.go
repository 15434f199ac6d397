package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) SaveMessage(ctx context.Context, message domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (message_id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		message.MessageID,
		message.Name,
		message.Email,
		message.Phone,
		message.Message,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (r *ContactRepository) ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT message_id, name, email, phone, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContactMessage, error) {
		var message domain.ContactMessage
		err := row.Scan(
			&message.MessageID,
			&message.Name,
			&message.Email,
			&message.Phone,
			&message.Message,
			&message.CreatedAt,
		)
		return message, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan contact messages: %w", err)
	}

	return messages, nil
}
