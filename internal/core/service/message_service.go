package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

const auditResourceMessage = "message"

type MessageService struct {
	repo  ports.MessageRepository
	audit ports.AuditLog
	log   zerolog.Logger
}

// NewMessageService returns a MessageService. A nil audit log disables auditing.
func NewMessageService(repo ports.MessageRepository, audit ports.AuditLog, log zerolog.Logger) *MessageService {
	if audit == nil {
		audit = noopAudit{}
	}
	return &MessageService{repo: repo, audit: audit, log: log}
}

// List returns every message, newest first.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// Create stores a guestbook entry. No authentication is required.
func (s *MessageService) Create(ctx context.Context, name, email, text string) (*domain.Message, error) {
	if name == "" || email == "" || text == "" {
		return nil, domain.Invalid("All fields are required")
	}

	msg := &domain.Message{Name: name, Email: email, Message: text}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

func (s *MessageService) Update(ctx context.Context, id int64, text string, actorID int64) error {
	if text == "" {
		return domain.Invalid("Message content is required")
	}

	n, err := s.repo.UpdateText(ctx, id, text)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if n == 0 {
		return domain.ErrMessageNotFound
	}

	s.record(ctx, domain.AuditUpdate, id, actorID)
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id, actorID int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if n == 0 {
		return domain.ErrMessageNotFound
	}

	s.record(ctx, domain.AuditDelete, id, actorID)
	return nil
}

func (s *MessageService) record(ctx context.Context, action domain.AuditAction, id, actorID int64) {
	recordAudit(ctx, s.audit, s.log, domain.AuditEntry{
		Action:     action,
		Resource:   auditResourceMessage,
		ResourceID: id,
		ActorID:    actorID,
		At:         time.Now().UTC(),
	})
}
