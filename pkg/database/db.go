// Package database opens the relational store. There is no package-level
// handle: callers own the *gorm.DB that Open returns and pass it down.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shashiranjanraj/storefront/pkg/metrics"
)

// Open connects to driver/dsn, configures the connection pool and verifies
// the connection with a ping.
func Open(driver, dsn string) (*gorm.DB, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: build dialector: %w", err)
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // use pkg/logger, not GORM's own
		// Timestamps are stored in UTC with microsecond precision so they
		// survive a round trip through every supported driver unchanged.
		NowFunc: func() time.Time {
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}

	return openWith(dialector, gormCfg, configure)
}

// openWith opens the pool and runs setup on it. The pool is closed when
// setup fails so a failed Open leaks no connections.
func openWith(dialector gorm.Dialector, cfg *gorm.Config, setup func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	if err := setup(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

func configure(db *gorm.DB) error {
	if err := registerMetrics(db); err != nil {
		return fmt.Errorf("database: register callbacks: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

const startKey = "metrics:start"

// registerMetrics times every statement gorm issues and reports it to the
// storefront_db_query_duration_seconds histogram.
func registerMetrics(db *gorm.DB) error {
	cb := db.Callback()

	steps := []error{
		cb.Create().Before("gorm:create").Register("metrics:before_create", markStart),
		cb.Create().After("gorm:create").Register("metrics:after_create", observe("insert")),
		cb.Query().Before("gorm:query").Register("metrics:before_query", markStart),
		cb.Query().After("gorm:query").Register("metrics:after_query", observe("select")),
		cb.Update().Before("gorm:update").Register("metrics:before_update", markStart),
		cb.Update().After("gorm:update").Register("metrics:after_update", observe("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:before_delete", markStart),
		cb.Delete().After("gorm:delete").Register("metrics:after_delete", observe("delete")),
		cb.Row().Before("gorm:row").Register("metrics:before_row", markStart),
		cb.Row().After("gorm:row").Register("metrics:after_row", observe("select")),
		cb.Raw().Before("gorm:raw").Register("metrics:before_raw", markStart),
		cb.Raw().After("gorm:raw").Register("metrics:after_raw", observe("raw")),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

func markStart(tx *gorm.DB) {
	tx.InstanceSet(startKey, time.Now())
}

func observe(op string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		v, ok := tx.InstanceGet(startKey)
		if !ok {
			return
		}
		if start, ok := v.(time.Time); ok {
			metrics.ObserveDBQuery(op, start)
		}
	}
}
