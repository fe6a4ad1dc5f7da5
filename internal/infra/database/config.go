package database

import (
	"fmt"
	"strings"
	"time"

	"climate-api/pkg/resource"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	GatewaySQL  = "sql"
	GatewayGorm = "gorm"
)

// Config describes how to reach the observation store
type Config struct {
	Driver          string
	Gateway         string
	Path            string
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	Schema          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// LoadConfig reads the app.db.* properties
func LoadConfig() Config {
	return Config{
		Driver:          resource.GetString("app.db.driver"),
		Gateway:         resource.GetString("app.db.gateway"),
		Path:            resource.GetString("app.db.path"),
		Host:            resource.GetString("app.db.host"),
		Port:            resource.GetString("app.db.port"),
		Username:        resource.GetString("app.db.username"),
		Password:        resource.GetString("app.db.password"),
		Database:        resource.GetString("app.db.database"),
		Schema:          resource.GetString("app.db.schema"),
		MaxOpenConns:    resource.GetInt("app.db.max-open-conns"),
		MaxIdleConns:    resource.GetInt("app.db.max-idle-conns"),
		ConnMaxLifetime: resource.GetDuration("app.db.conn-max-lifetime"),
	}
}

// Validate checks driver and gateway names and the fields each driver needs
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("app.db.path is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.Host == "" || c.Database == "" {
			return fmt.Errorf("app.db.host and app.db.database are required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("invalid app.db.driver %q (allowed: %s, %s)", c.Driver, DriverSQLite, DriverPostgres)
	}

	switch c.Gateway {
	case GatewaySQL, GatewayGorm:
		return nil
	default:
		return fmt.Errorf("invalid app.db.gateway %q (allowed: %s, %s)", c.Gateway, GatewaySQL, GatewayGorm)
	}
}

// DSN builds the driver specific data source name. The sqlite file is opened read-only.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", c.Path)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		quoteDSNValue(c.Host), quoteDSNValue(c.Port), quoteDSNValue(c.Username),
		quoteDSNValue(c.Password), quoteDSNValue(c.Database), quoteDSNValue(c.Schema))
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quoteDSNValue quotes a libpq key=value entry so empty values and spaces survive parsing
func quoteDSNValue(value string) string {
	return "'" + dsnEscaper.Replace(value) + "'"
}

// DriverName is the database/sql driver registered for c.Driver
func (c Config) DriverName() string {
	if c.Driver == DriverSQLite {
		return "sqlite3"
	}
	return "postgres"
}
