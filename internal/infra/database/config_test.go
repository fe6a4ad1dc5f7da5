package database

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, GatewaySQL, cfg.Gateway)
	assert.Equal(t, "Resources/hawaii.sqlite", cfg.Path)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := map[string]Config{
		"unknown driver":        {Driver: "mysql", Gateway: GatewaySQL},
		"sqlite without path":   {Driver: DriverSQLite, Gateway: GatewaySQL},
		"postgres without host": {Driver: DriverPostgres, Gateway: GatewaySQL, Database: "climate"},
		"unknown gateway":       {Driver: DriverSQLite, Gateway: "orm", Path: "hawaii.sqlite"},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	sqlite := Config{Driver: DriverSQLite, Path: "Resources/hawaii.sqlite"}
	assert.Equal(t, "file:Resources/hawaii.sqlite?mode=ro&_busy_timeout=5000", sqlite.DSN())
	assert.Equal(t, "sqlite3", sqlite.DriverName())

	postgres := Config{Driver: DriverPostgres, Host: "db", Port: "5432", Username: "u", Password: "p", Database: "climate", Schema: "public"}
	assert.Equal(t, "host='db' port='5432' user='u' password='p' dbname='climate' sslmode=disable search_path='public'", postgres.DSN())
	assert.Equal(t, "postgres", postgres.DriverName())
}

func TestDSN_PostgresPasswords(t *testing.T) {
	cases := map[string]struct {
		password string
		quoted   string
	}{
		"empty":          {password: "", quoted: "password=''"},
		"with space":     {password: "p w", quoted: "password='p w'"},
		"with quote":     {password: "it's", quoted: `password='it\'s'`},
		"with backslash": {password: `a\b`, quoted: `password='a\\b'`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Config{Driver: DriverPostgres, Host: "db", Port: "5432", Username: "u", Password: tc.password, Database: "climate", Schema: "public"}
			dsn := cfg.DSN()

			assert.Contains(t, dsn, tc.quoted+" dbname='climate'")
			_, err := pq.NewConnector(dsn)
			require.NoError(t, err)
		})
	}
}
