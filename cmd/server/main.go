// Command server runs the restaurant website API.
//
//	@title						Restaurant API
//	@version					1.0
//	@description				Menu, guestbook and admin API for the restaurant website.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cedarhouse/restaurant-api/internal/api"
	"github.com/cedarhouse/restaurant-api/internal/bootstrap"
	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/service"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/config"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/postgres"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/http/handlers"
	"github.com/cedarhouse/restaurant-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "restaurant-api",
	})

	stores, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(context.Background())

	if err := postgres.Migrate(ctx, stores.DB); err != nil {
		return err
	}

	users := postgres.NewUserRepository(stores.DB)
	menu := postgres.NewMenuRepository(stores.DB)
	messages := postgres.NewMessageRepository(stores.DB)
	audit := stores.AuditLog()

	e := api.NewRouter(api.Dependencies{
		Auth:        service.NewAuthService(users, stores.Throttle(), cfg.JWTSecret, domain.SessionTTL, log),
		Menu:        service.NewMenuService(menu, audit, log),
		Messages:    service.NewMessageService(messages, audit, log),
		Stats:       service.NewStatsService(messages, users, menu),
		Audit:       service.NewAuditService(audit),
		Readiness:   handlers.NewHealthDependenciesHandler(stores.DB, stores.Redis, stores.Mongo),
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
