// Package cli implements restaurantctl, the operator command line.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/service"
	"github.com/cedarhouse/restaurant-api/internal/infrastructure/db/postgres"
)

// Env is what the commands need from the outside world.
type Env struct {
	// OpenDB returns a ready PostgreSQL handle. Commands close it.
	OpenDB    func(ctx context.Context) (*sql.DB, error)
	JWTSecret string
	Log       zerolog.Logger
}

// migrateFunc is a seam for tests.
var migrateFunc = postgres.Migrate

func NewRootCommand(env Env) *cobra.Command {
	root := &cobra.Command{
		Use:           "restaurantctl",
		Short:         "Operator tasks for the restaurant API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCommand(env),
		newSetAdminCommand(env, "promote", "Grant admin rights to the user with this email", true),
		newSetAdminCommand(env, "demote", "Revoke admin rights from the user with this email", false),
		newCreateAdminCommand(env),
	)
	return root
}

func newMigrateCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), env, func(db *sql.DB) error {
				if err := migrateFunc(cmd.Context(), db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
				return nil
			})
		},
	}
}

func newSetAdminCommand(env Env, use, short string, isAdmin bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			return withDB(cmd.Context(), env, func(db *sql.DB) error {
				if err := postgres.NewUserRepository(db).SetAdmin(cmd.Context(), email, isAdmin); err != nil {
					return fmt.Errorf("%s %s: %w", use, email, err)
				}
				printAdminState(cmd.OutOrStdout(), email, isAdmin)
				return nil
			})
		},
	}
}

func newCreateAdminCommand(env Env) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user account and grant it admin rights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withDB(ctx, env, func(db *sql.DB) error {
				users := postgres.NewUserRepository(db)
				auth := service.NewAuthService(users, nil, env.JWTSecret, domain.SessionTTL, env.Log)

				session, err := auth.SignUp(ctx, username, email, password)
				if err != nil {
					return fmt.Errorf("create-admin: %w", err)
				}
				if err := users.SetAdmin(ctx, email, true); err != nil {
					return fmt.Errorf("create-admin: user %d was created without admin rights, run `promote %s` to finish: %w", session.User.ID, email, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s)\n", session.User.ID, session.User.Username)
				printAdminState(cmd.OutOrStdout(), email, true)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func withDB(ctx context.Context, env Env, fn func(db *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := env.OpenDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func printAdminState(w io.Writer, email string, isAdmin bool) {
	if isAdmin {
		fmt.Fprintf(w, "%s is now an admin\n", email)
		return
	}
	fmt.Fprintf(w, "%s is no longer an admin\n", email)
}
