package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

type MenuService struct {
	repo  ports.MenuRepository
	audit ports.AuditLog
	log   zerolog.Logger
}

// NewMenuService returns a MenuService. A nil audit log disables auditing.
func NewMenuService(repo ports.MenuRepository, audit ports.AuditLog, log zerolog.Logger) *MenuService {
	if audit == nil {
		audit = noopAudit{}
	}
	return &MenuService{repo: repo, audit: audit, log: log}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	category, price, err := validateMenuInput(in)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, category, in.Name, price)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.record(ctx, domain.AuditCreate, category.Table(), id, in.ActorID)
	return &domain.MenuItem{ID: id, Name: in.Name, Price: price, Category: category}, nil
}

func (s *MenuService) Update(ctx context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	category, price, err := validateMenuInput(in)
	if err != nil {
		return nil, err
	}

	n, err := s.repo.Update(ctx, category, in.ID, in.Name, price)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrMenuItemNotFound
	}

	s.record(ctx, domain.AuditUpdate, category.Table(), in.ID, in.ActorID)
	return &domain.MenuItem{ID: in.ID, Name: in.Name, Price: price, Category: category}, nil
}

func (s *MenuService) Delete(ctx context.Context, table string, id, actorID int64) error {
	category, err := domain.ParseCategory(table)
	if err != nil {
		return err
	}

	n, err := s.repo.Delete(ctx, category, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if n == 0 {
		return domain.ErrMenuItemNotFound
	}

	s.record(ctx, domain.AuditDelete, category.Table(), id, actorID)
	return nil
}

// validateMenuInput checks the table first so an unknown table is reported
// before any field problem. The returned price is rounded to whole cents,
// which is what the store keeps.
func validateMenuInput(in ports.MenuItemInput) (domain.Category, float64, error) {
	category, err := domain.ParseCategory(in.Table)
	if err != nil {
		return 0, 0, err
	}
	if in.Name == "" || in.Price <= 0 {
		return 0, 0, domain.Invalid("Name and price are required")
	}
	price, ok := domain.NormalizePrice(in.Price)
	if !ok {
		return 0, 0, domain.Invalid(fmt.Sprintf("Price must be between %.2f and %.2f", domain.MinMenuPrice, domain.MaxMenuPrice))
	}
	return category, price, nil
}

func (s *MenuService) record(ctx context.Context, action domain.AuditAction, resource string, id, actorID int64) {
	recordAudit(ctx, s.audit, s.log, domain.AuditEntry{
		Action:     action,
		Resource:   resource,
		ResourceID: id,
		ActorID:    actorID,
		At:         time.Now().UTC(),
	})
	s.log.Info().
		Str("action", string(action)).
		Str("table", resource).
		Int64("id", id).
		Int64("actor_id", actorID).
		Msg("menu item changed")
}
