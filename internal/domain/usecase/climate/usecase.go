package climate

import (
	"context"
	"time"

	"climate-api/internal/domain/model"
)

type UseCase interface {
	// PrecipitationByDate maps each observation date to its precipitation. When several stations
	// report the same date the last row read wins; missing precipitation stays nil.
	PrecipitationByDate(ctx context.Context) (map[string]*float64, error)

	// ListStations returns each station name once
	ListStations(ctx context.Context) ([]string, error)

	// RecentTemperatures returns the temperatures of the trailing year (mostRecent-1y, mostRecent]
	RecentTemperatures(ctx context.Context) ([]float64, error)

	// TemperatureStats returns min/avg/max temperature for start <= date <= end
	TemperatureStats(ctx context.Context, start time.Time, end time.Time) (model.TemperatureSummary, error)

	// TemperatureStatsFromStart is TemperatureStats ending at the most recent observation date
	TemperatureStatsFromStart(ctx context.Context, start time.Time) (model.TemperatureSummary, error)

	// MostRecentDate returns the anchor date of the dataset
	MostRecentDate(ctx context.Context) (time.Time, error)
}
