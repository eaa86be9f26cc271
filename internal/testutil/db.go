// Package testutil provides an in-memory store for service tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database and migrates the given models.
// Unique indexes declared on the models are created, so store-level conflicts
// surface as gorm.ErrDuplicatedKey just like on postgres.
// Foreign keys are not enforced, so tests may reference rows that do not exist.
func NewDB(t testing.TB, models ...any) *gorm.DB {
	t.Helper()
	return open(t, "file::memory:", models)
}

// NewDBWithForeignKeys is NewDB with foreign key enforcement switched on, so
// ON DELETE actions declared on the models run as they do on postgres.
func NewDBWithForeignKeys(t testing.TB, models ...any) *gorm.DB {
	t.Helper()
	return open(t, "file::memory:?_foreign_keys=on", models)
}

func open(t testing.TB, dsn string, models []any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	return db
}
