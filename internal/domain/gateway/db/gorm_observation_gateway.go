package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"climate-api/internal/domain/entity"
	"climate-api/pkg/util/dateutils"

	"gorm.io/gorm"
)

const (
	measurementTable = "measurement"
	stationTable     = "station"
)

type precipitationRow struct {
	Date string          `gorm:"column:date"`
	Prcp sql.NullFloat64 `gorm:"column:prcp"`
}

// GormObservationGateway reads the observation store through explicit table and column
// names; no model is migrated or reflected from the database.
type GormObservationGateway struct {
	DB *gorm.DB
}

var _ ObservationGateway = (*GormObservationGateway)(nil)

func NewGormObservationGateway(db *gorm.DB) *GormObservationGateway {
	return &GormObservationGateway{DB: db}
}

// session scopes a fresh statement to the request context
func (gateway *GormObservationGateway) session(ctx context.Context) *gorm.DB {
	return gateway.DB.Session(&gorm.Session{NewDB: true}).WithContext(ctx)
}

func (gateway *GormObservationGateway) FindAllPrecipitation(ctx context.Context) ([]entity.PrecipitationReading, error) {
	var rows []precipitationRow
	err := gateway.session(ctx).
		Table(measurementTable).
		Select("CAST(date AS TEXT) AS date, prcp").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query precipitation: %w", err)
	}

	readings := make([]entity.PrecipitationReading, 0, len(rows))
	for _, row := range rows {
		readings = append(readings, entity.PrecipitationReading{Date: row.Date, Precipitation: nullableFloat(row.Prcp)})
	}
	return readings, nil
}

func (gateway *GormObservationGateway) FindDistinctStationNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	err := gateway.session(ctx).
		Table(stationTable).
		Distinct().
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	return names, nil
}

func (gateway *GormObservationGateway) FindTemperatures(ctx context.Context, after time.Time, through time.Time) ([]float64, error) {
	temperatures := make([]float64, 0)
	err := gateway.session(ctx).
		Table(measurementTable).
		Where("date > ? AND date <= ?", dateutils.Format(after), dateutils.Format(through)).
		Where("tobs IS NOT NULL").
		Pluck("tobs", &temperatures).Error
	if err != nil {
		return nil, fmt.Errorf("query temperatures: %w", err)
	}
	return temperatures, nil
}

func (gateway *GormObservationGateway) FindMostRecentDate(ctx context.Context) (string, error) {
	var date sql.NullString
	err := gateway.session(ctx).
		Table(measurementTable).
		Select("CAST(MAX(date) AS TEXT)").
		Row().
		Scan(&date)
	if err != nil {
		return "", fmt.Errorf("query most recent date: %w", err)
	}
	return date.String, nil
}

func (gateway *GormObservationGateway) FindTemperatureAggregate(ctx context.Context, start time.Time, end time.Time) (entity.TemperatureAggregate, error) {
	var minimum, average, maximum sql.NullFloat64
	var count int64
	err := gateway.session(ctx).
		Table(measurementTable).
		Select("MIN(tobs), AVG(tobs), MAX(tobs), COUNT(tobs)").
		Where("date >= ? AND date <= ?", dateutils.Format(start), dateutils.Format(end)).
		Row().
		Scan(&minimum, &average, &maximum, &count)
	if err != nil {
		return entity.TemperatureAggregate{}, fmt.Errorf("query temperature aggregate: %w", err)
	}

	return entity.TemperatureAggregate{
		Min:   nullableFloat(minimum),
		Avg:   nullableFloat(average),
		Max:   nullableFloat(maximum),
		Count: count,
	}, nil
}
