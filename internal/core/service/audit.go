package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// recordAudit appends to the audit trail. Failures are logged only; the
// mutation has already been committed.
func recordAudit(ctx context.Context, audit ports.AuditLog, log zerolog.Logger, entry domain.AuditEntry) {
	if err := audit.Record(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("resource", entry.Resource).
			Int64("id", entry.ResourceID).
			Msg("failed to write audit entry")
	}
}

// AuditService exposes the most recent admin mutations.
type AuditService struct {
	audit ports.AuditLog
}

func NewAuditService(audit ports.AuditLog) *AuditService {
	if audit == nil {
		audit = noopAudit{}
	}
	return &AuditService{audit: audit}
}

// Recent clamps limit to [1, 200]; zero or negative means the default of 50.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	switch {
	case limit <= 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}
	entries, err := s.audit.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("audit trail: %w", err)
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return entries, nil
}

type noopAudit struct{}

func (noopAudit) Record(context.Context, domain.AuditEntry) error { return nil }

func (noopAudit) Recent(context.Context, int) ([]domain.AuditEntry, error) {
	return []domain.AuditEntry{}, nil
}
