package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/corpdir/corpdir/internal/company"
	"github.com/corpdir/corpdir/internal/config"
)

// Open connects to the database described by cfg. The gorm logger is
// silenced; server-side logging goes through logrus instead.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		return gorm.Open(sqlite.Open(cfg.Database.DSN), gormCfg)
	case config.DriverPostgres:
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver: %q (must be %s or %s)",
			cfg.Database.Driver, config.DriverSQLite, config.DriverPostgres)
	}
}

// Migrate creates or updates the companies table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&company.Company{})
}
