// Package schema creates the storefront tables when they are missing.
// Existing tables are left alone; there is no versioned migration history.
package schema

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
)

// Tables lists the models owned by the storefront, parents first.
func Tables() []interface{} {
	return []interface{}{
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	}
}

// Ensure creates products, orders and order_items if they do not exist.
func Ensure(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("schema: ensure tables: %w", err)
	}
	return nil
}
