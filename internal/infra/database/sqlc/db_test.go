package sqlc

import (
	"context"
	"path/filepath"
	"testing"

	"climate-api/internal/infra/database"
	"climate-api/internal/infra/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(path string) database.Config {
	return database.Config{
		Driver:       database.DriverSQLite,
		Gateway:      database.GatewaySQL,
		Path:         path,
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	}
}

func TestOpen_ReadOnlySQLite(t *testing.T) {
	stations, observations := dbtest.Sample()
	db, err := Open(context.Background(), sqliteConfig(dbtest.File(t, stations, observations)))
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM measurement").Scan(&count))
	assert.Equal(t, 3, count)

	_, err = db.Exec("DELETE FROM measurement")
	assert.Error(t, err)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), sqliteConfig(filepath.Join(t.TempDir(), "missing.sqlite")))

	assert.Error(t, err)
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := Open(context.Background(), database.Config{Driver: "mysql"})

	assert.Error(t, err)
}
