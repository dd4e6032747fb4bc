package ports

import (
	"context"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// MessageRepository is the guestbook table.
type MessageRepository interface {
	// List returns messages newest first.
	List(ctx context.Context) ([]domain.Message, error)
	// Create inserts the message and fills ID and CreatedAt.
	Create(ctx context.Context, msg *domain.Message) error
	UpdateText(ctx context.Context, id int64, text string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type MessageService interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, name, email, text string) (*domain.Message, error)
	Update(ctx context.Context, id int64, text string, actorID int64) error
	Delete(ctx context.Context, id, actorID int64) error
}
