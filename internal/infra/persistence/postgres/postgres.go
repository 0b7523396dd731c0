package postgres

import (
	"context"
	"log/slog"

	"nutritrack/config"
	"nutritrack/internal/domain/lifecycle"
	"nutritrack/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool shared by every repository. The pool is pinged on start
// and watched for connection waits, which show up first when a scheduler tick fans out.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Driver errors become gorm.ErrDuplicatedKey and friends; see constraint_errors.go.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute instead.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger)
	ping := NewPinger(db)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := ping(ctx); err != nil {
				return err
			}
			monitor.start()

			return nil
		},
		OnStop: func(context.Context) error {
			monitor.stop()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

// Pinger reports whether the database is reachable.
type Pinger func(ctx context.Context) error

// NewPinger exposes a readiness check over the shared connection pool.
func NewPinger(db *gorm.DB) Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}

		return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping PostgreSQL")
	}
}
