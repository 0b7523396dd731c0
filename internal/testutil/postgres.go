package testutil

import (
	"context"
	"testing"

	"nutritrack/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	postgresmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// uuidV7Fallback stands in for the pg_uuidv7 extension, which the stock image does not ship.
const uuidV7Fallback = `CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid LANGUAGE sql AS 'SELECT gen_random_uuid()'`

// SetupPostgresContainer starts a throwaway PostgreSQL with the schema migrated and skips the test
// when Docker is unavailable. The connection translates driver errors like the application pool.
func SetupPostgresContainer(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start postgres container: %v", r)
		}
	}()

	container, err := postgresmodule.Run(ctx, "postgres:16-alpine",
		postgresmodule.WithDatabase("nutritrack"),
		postgresmodule.WithUsername("nutritrack"),
		postgresmodule.WithPassword("nutritrack"),
		postgresmodule.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Skipf("failed to get postgres host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Skipf("failed to get postgres port: %v", err)
	}

	db, err := pgLib.New(&pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     port.Port(),
			UserName: "nutritrack",
			Password: "nutritrack",
		},
		Database: "nutritrack",
		SSLMode:  "disable",
	})
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	if err := db.Exec(uuidV7Fallback).Error; err != nil {
		t.Fatalf("failed to create uuid_generate_v7: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				t.Logf("failed to close postgres pool: %v", err)
			}
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}

	return db, cleanup
}
