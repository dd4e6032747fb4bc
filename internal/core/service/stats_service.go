package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

// StatsService aggregates the admin dashboard counters.
type StatsService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	menu     ports.MenuRepository
}

func NewStatsService(messages ports.MessageRepository, users ports.UserRepository, menu ports.MenuRepository) *StatsService {
	return &StatsService{messages: messages, users: users, menu: menu}
}

// Stats issues the three counts concurrently. The result is not a consistent
// snapshot; any single failure discards the whole result.
func (s *StatsService) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.messages.Count(gctx)
		if err != nil {
			return fmt.Errorf("count messages: %w", err)
		}
		stats.TotalMessages = n
		return nil
	})
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		stats.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.menu.Count(gctx)
		if err != nil {
			return fmt.Errorf("count menu items: %w", err)
		}
		stats.TotalMenuItems = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
