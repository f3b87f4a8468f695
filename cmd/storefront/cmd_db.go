package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/database/schema"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// bootDB loads config, enables the Mongo log sink when configured, opens
// the database and makes sure the tables exist.
func bootDB(ctx context.Context) (*gorm.DB, error) {
	if err := config.Load(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		if err := logger.EnableMongo(uri, config.LogMongoDatabase(), config.LogMongoCollection()); err != nil {
			// Stdout logging still works; carry on without the sink.
			logger.Warn("log sink disabled", "error", err)
		}
	}

	db, err := database.Open(config.DatabaseDriver(), config.DatabaseDSN())
	if err != nil {
		return nil, err
	}

	if err := schema.Ensure(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

// storefront seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create missing tables and run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := bootDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		return seeders.RunAll(ctx, db)
	},
}
