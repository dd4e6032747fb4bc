package ports

import (
	"context"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

// AuditLog persists the admin mutation trail.
type AuditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type StatsService interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type AuditService interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
