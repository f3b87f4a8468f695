package testkit

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/database/schema"
	"github.com/shashiranjanraj/storefront/pkg/database"
)

// DB opens a fresh sqlite database under t.TempDir with the storefront
// tables created. It is closed when the test ends.
func DB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "storefront.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := database.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("testkit: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := schema.Ensure(context.Background(), db); err != nil {
		t.Fatalf("testkit: ensure schema: %v", err)
	}
	return db
}
