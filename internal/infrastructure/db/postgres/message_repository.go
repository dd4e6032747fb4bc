package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// List orders by creation time, newest first. Ties break on id so that
// messages inserted within the same instant keep a stable order.
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	query :=
		`SELECT id, name, email, message, created_at FROM messages
		 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	msgs := make([]domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return msgs, nil
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query :=
		`INSERT INTO messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, msg.Name, msg.Email, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateText replaces the message body. created_at is never touched.
func (r *MessageRepository) UpdateText(ctx context.Context, id int64, text string) (int64, error) {
	return execAffected(ctx, r.db, `UPDATE messages SET message = $1 WHERE id = $2`, text, id)
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return execAffected(ctx, r.db, `DELETE FROM messages WHERE id = $1`, id)
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
