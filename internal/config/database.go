package config

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens a gorm connection for the sqlite or postgres storage driver.
func Connect(ctx context.Context, driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case StoragePostgres:
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for the postgres driver")
		}
		dialector = postgres.Open(dsn)
	case StorageSQLite:
		if dsn == "" {
			dsn = "chronos.db"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database pool: %w", err)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	if driver == StorageSQLite {
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	WithContext(ctx).WithField("driver", driver).Info("Database connected")
	return db, nil
}
