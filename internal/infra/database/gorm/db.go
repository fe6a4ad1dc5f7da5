package gorm

import (
	"database/sql"
	"fmt"

	"climate-api/internal/infra/database"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open wraps an already opened pool so sql and gorm gateways share the same connections
func Open(db *sql.DB, driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case database.DriverSQLite:
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite3", Conn: db})
	case database.DriverPostgres:
		dialector = postgres.New(postgres.Config{Conn: db})
	default:
		return nil, fmt.Errorf("unsupported gorm driver %q", driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Warn),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return gormDB, nil
}
