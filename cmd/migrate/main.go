// Command migrate creates or updates the nutritrack schema from the gorm models.
package main

import (
	"log/slog"
	"os"

	"nutritrack/config"
	logs "nutritrack/internal/infra/log"
	"nutritrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// uuid_generate_v7() column defaults come from this extension.
const uuidExtension = "CREATE EXTENSION IF NOT EXISTS pg_uuidv7"

func main() {
	if err := run(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	if err := db.Exec(uuidExtension).Error; err != nil {
		return errors.Wrap(err, "failed to enable pg_uuidv7")
	}

	models := model.All()

	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.Info("Schema migrated", slog.Int("models", len(models)))

	return nil
}
