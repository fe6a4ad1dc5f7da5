package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"climate-api/internal/domain/entity"
	"climate-api/pkg/util/dateutils"
)

// Queries are written in the subset of SQL shared by sqlite and postgres.
// Dates are compared as YYYY-MM-DD text and read back through CAST so DATE columns scan as text.
const (
	selectPrecipitation = `
		SELECT CAST(m.date AS TEXT), m.prcp
		FROM measurement m`

	selectDistinctStationNames = `
		SELECT DISTINCT s.name
		FROM station s`

	selectTemperaturesBetween = `
		SELECT m.tobs
		FROM measurement m
		WHERE m.date > $1 AND m.date <= $2 AND m.tobs IS NOT NULL`

	selectMostRecentDate = `
		SELECT CAST(MAX(m.date) AS TEXT)
		FROM measurement m`

	selectTemperatureAggregate = `
		SELECT MIN(m.tobs), AVG(m.tobs), MAX(m.tobs), COUNT(m.tobs)
		FROM measurement m
		WHERE m.date >= $1 AND m.date <= $2`
)

type SQLCObservationGateway struct {
	DB *sql.DB
}

var _ ObservationGateway = (*SQLCObservationGateway)(nil)

func NewSQLCObservationGateway(db *sql.DB) *SQLCObservationGateway {
	return &SQLCObservationGateway{DB: db}
}

// withConn runs fn on a connection taken from the pool and returns it on every path
func (gateway *SQLCObservationGateway) withConn(ctx context.Context, fn func(conn *sql.Conn) error) (err error) {
	conn, err := gateway.DB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(conn)
}

func (gateway *SQLCObservationGateway) FindAllPrecipitation(ctx context.Context) ([]entity.PrecipitationReading, error) {
	readings := make([]entity.PrecipitationReading, 0)

	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectPrecipitation)
		if err != nil {
			return fmt.Errorf("query precipitation: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var date string
			var prcp sql.NullFloat64
			if err := rows.Scan(&date, &prcp); err != nil {
				return fmt.Errorf("scan precipitation: %w", err)
			}
			readings = append(readings, entity.PrecipitationReading{Date: date, Precipitation: nullableFloat(prcp)})
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (gateway *SQLCObservationGateway) FindDistinctStationNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)

	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectDistinctStationNames)
		if err != nil {
			return fmt.Errorf("query stations: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return fmt.Errorf("scan station: %w", err)
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (gateway *SQLCObservationGateway) FindTemperatures(ctx context.Context, after time.Time, through time.Time) ([]float64, error) {
	temperatures := make([]float64, 0)

	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, selectTemperaturesBetween, dateutils.Format(after), dateutils.Format(through))
		if err != nil {
			return fmt.Errorf("query temperatures: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var tobs float64
			if err := rows.Scan(&tobs); err != nil {
				return fmt.Errorf("scan temperature: %w", err)
			}
			temperatures = append(temperatures, tobs)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return temperatures, nil
}

func (gateway *SQLCObservationGateway) FindMostRecentDate(ctx context.Context) (string, error) {
	var date sql.NullString

	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		if err := conn.QueryRowContext(ctx, selectMostRecentDate).Scan(&date); err != nil {
			return fmt.Errorf("query most recent date: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return date.String, nil
}

func (gateway *SQLCObservationGateway) FindTemperatureAggregate(ctx context.Context, start time.Time, end time.Time) (entity.TemperatureAggregate, error) {
	var minimum, average, maximum sql.NullFloat64
	var count int64

	err := gateway.withConn(ctx, func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, selectTemperatureAggregate, dateutils.Format(start), dateutils.Format(end))
		if err := row.Scan(&minimum, &average, &maximum, &count); err != nil {
			return fmt.Errorf("query temperature aggregate: %w", err)
		}
		return nil
	})
	if err != nil {
		return entity.TemperatureAggregate{}, err
	}

	return entity.TemperatureAggregate{
		Min:   nullableFloat(minimum),
		Avg:   nullableFloat(average),
		Max:   nullableFloat(maximum),
		Count: count,
	}, nil
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}
