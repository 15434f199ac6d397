// Command seed provisions the initial admin account and the default
// currency list. Safe to run repeatedly: the admin is only created when
// no admin exists, and currencies are only seeded when the table is empty.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/abdout/abushala-backend/internal/adapters/database/pgsql"
	"github.com/abdout/abushala-backend/internal/core/services"
	"github.com/abdout/abushala-backend/internal/platform/config"
	"github.com/abdout/abushala-backend/pkg/database"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositories(dbPool)

	if err := services.EnsureDefaults(ctx, repos); err != nil {
		logger.Error("Failed to seed defaults", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Seeding complete.", slog.String("admin_email", services.DefaultAdminEmail))
}
