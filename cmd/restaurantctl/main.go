// Command restaurantctl runs operator tasks against the restaurant database.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/cedarhouse/restaurant-api/internal/cli"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/config"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/postgres"
	"github.com/cedarhouse/restaurant-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "restaurantctl", Output: os.Stderr})

	root := cli.NewRootCommand(cli.Env{
		OpenDB: func(ctx context.Context) (*sql.DB, error) {
			return postgres.Connect(ctx, cfg.Postgres.DSN())
		},
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
