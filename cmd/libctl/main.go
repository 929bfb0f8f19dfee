// Command libctl runs administrative tasks against the library database:
// bulk book imports and account creation.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-library/internal/config"
	"github.com/sbilibin2017/gw-library/internal/database"
	"github.com/sbilibin2017/gw-library/internal/jwt"
	"github.com/sbilibin2017/gw-library/internal/logger"
	"github.com/sbilibin2017/gw-library/internal/repositories"
	"github.com/sbilibin2017/gw-library/internal/services"
)

// backend is what the subcommands operate on.
type backend struct {
	books BookCreator
	users UserRegisterer
	close func()
}

// opener connects to the backing store described by the config file at path.
type opener func(ctx context.Context, path string) (*backend, error)

func main() {
	if err := newRootCmd(openBackend, readPassword).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open opener, password passwordReader) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "libctl",
		Short:        "Administrative tasks for the library service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	connect := func(ctx context.Context) (*backend, error) {
		return open(ctx, configPath)
	}
	root.AddCommand(
		newImportBooksCmd(connect),
		newCreateUserCmd(connect, password),
	)
	return root
}

// openBackend loads the config, applies migrations and builds the services
// the same way the HTTP server does.
func openBackend(ctx context.Context, path string) (*backend, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogDevelop); err != nil {
		return nil, err
	}

	if err := database.RunMigrations(cfg.PostgresDSN()); err != nil {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}

	bookRepo := repositories.NewBookRepository(db, nil)
	borrowRepo := repositories.NewBorrowRepository(db, nil)
	userReadRepo := repositories.NewUserReadRepository(db, nil)
	userWriteRepo := repositories.NewUserWriteRepository(db, nil)

	availability := services.NewAvailabilityResolver(borrowRepo)
	tokens := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	return &backend{
		books: services.NewBookService(bookRepo, bookRepo, availability),
		users: services.NewAuthService(userReadRepo, userWriteRepo, tokens, nil, 0),
		close: func() {
			db.Close()
			logger.Sync()
		},
	}, nil
}
