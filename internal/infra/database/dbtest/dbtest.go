// Package dbtest builds sqlite observation stores shaped like hawaii.sqlite for tests.
package dbtest

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"climate-api/internal/domain/entity"

	_ "github.com/mattn/go-sqlite3"
)

const Schema = `
CREATE TABLE station (
  id        INTEGER PRIMARY KEY,
  station   TEXT,
  name      TEXT,
  latitude  REAL,
  longitude REAL,
  elevation REAL
);

CREATE TABLE measurement (
  id      INTEGER PRIMARY KEY,
  station TEXT,
  date    TEXT,
  prcp    REAL,
  tobs    REAL
);
`

// Open returns an in-memory store seeded with the given rows, closed with the test.
// The pool is pinned to one connection since every sqlite :memory: connection is a separate database.
func Open(t *testing.T, stations []entity.Station, observations []entity.Observation) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Errorf("close db: %v", closeErr)
		}
	})

	Seed(t, db, stations, observations)
	return db
}

// File writes a seeded store to a sqlite file in a temp dir and returns its path
func File(t *testing.T, stations []entity.Station, observations []entity.Observation) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hawaii.sqlite")
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s", path))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Fatalf("close db: %v", closeErr)
		}
	}()

	Seed(t, db, stations, observations)
	return path
}

// Seed creates the schema and inserts rows in the given order
func Seed(t *testing.T, db *sql.DB, stations []entity.Station, observations []entity.Observation) {
	t.Helper()

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	for _, s := range stations {
		if _, err := db.Exec(`INSERT INTO station (station, name) VALUES ($1, $2)`, s.ID, s.Name); err != nil {
			t.Fatalf("insert station: %v", err)
		}
	}
	for _, o := range observations {
		_, err := db.Exec(`INSERT INTO measurement (station, date, prcp, tobs) VALUES ($1, $2, $3, $4)`,
			o.StationID, o.Date, o.Precipitation, o.Temperature)
		if err != nil {
			t.Fatalf("insert measurement: %v", err)
		}
	}
}

// Float returns a pointer to v, for nullable observation fields
func Float(v float64) *float64 {
	return &v
}

// Observation builds a measurement row
func Observation(station, date string, prcp, tobs *float64) entity.Observation {
	return entity.Observation{StationID: station, Date: date, Precipitation: prcp, Temperature: tobs}
}

// Sample is the three-row dataset used across end-to-end tests:
// two stations on 2017-01-01 and one on 2017-01-02 with no precipitation.
func Sample() ([]entity.Station, []entity.Observation) {
	stations := []entity.Station{
		{ID: "S1", Name: "WAIKIKI 717.2, HI US"},
		{ID: "S2", Name: "KANEOHE 838.1, HI US"},
		{ID: "S2", Name: "KANEOHE 838.1, HI US"},
	}
	observations := []entity.Observation{
		Observation("S1", "2017-01-01", Float(0.5), Float(58)),
		Observation("S2", "2017-01-01", Float(0.2), Float(60)),
		Observation("S1", "2017-01-02", nil, Float(62)),
	}
	return stations, observations
}
