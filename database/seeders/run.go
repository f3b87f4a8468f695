// Package seeders provides a registry of database seed functions.
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    Register("products", SeedProducts)
//	}
//
// Seeders run at serve startup and from `storefront seed`.
package seeders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// SeederFunc is the signature for a seed function. Seeders must be safe to
// run on every start.
type SeederFunc func(ctx context.Context, db *gorm.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the global registry.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Names returns the registered seeder names in run order.
func Names() []string {
	mu.Lock()
	defer mu.Unlock()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// RunAll executes every registered seeder in registration order.
// It stops on the first error.
func RunAll(ctx context.Context, db *gorm.DB) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	log := logger.WithCtx(ctx)
	if len(current) == 0 {
		log.Info("seed: no seeders registered")
		return nil
	}

	for _, e := range current {
		start := time.Now()
		if err := e.fn(ctx, db); err != nil {
			log.Error("seed: seeder failed", "seeder", e.name, "error", err)
			return fmt.Errorf("seeder %q: %w", e.name, err)
		}
		log.Info("seed: seeder done", "seeder", e.name, "duration", time.Since(start))
	}
	return nil
}
