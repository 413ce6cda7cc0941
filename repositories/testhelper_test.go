package repositories_test

import (
	"context"
	"testing"
	"time"

	"yournews/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type TestDB struct {
	DB        *gorm.DB
	Container testcontainers.Container
}

// SetupTestDB starts a postgres container and migrates the schema into it.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("yournews_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to migrate: %v", err)
	}

	return &TestDB{DB: db, Container: pgContainer}
}

func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if sqlDB, err := tdb.DB.DB(); err == nil {
		sqlDB.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data for test isolation.
func (tdb *TestDB) TruncateTables(t *testing.T) {
	t.Helper()
	err := tdb.DB.Exec("TRUNCATE TABLE role_applications, newsletters, articles, subscriptions, users, publishers RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}
