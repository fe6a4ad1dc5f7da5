package db

import (
	"context"
	"time"

	"climate-api/internal/domain/entity"
)

// ObservationGateway is the read-only access to the observation store.
// Every call holds a store connection only for its own duration.
type ObservationGateway interface {
	// FindAllPrecipitation returns every (date, precipitation) pair in store order
	FindAllPrecipitation(ctx context.Context) ([]entity.PrecipitationReading, error)

	// FindDistinctStationNames returns each station name once, in store order
	FindDistinctStationNames(ctx context.Context) ([]string, error)

	// FindTemperatures returns the non-null temperatures with after < date <= through
	FindTemperatures(ctx context.Context, after time.Time, through time.Time) ([]float64, error)

	// FindMostRecentDate returns the maximum observation date, or "" when the store is empty
	FindMostRecentDate(ctx context.Context) (string, error)

	// FindTemperatureAggregate returns min/avg/max temperature with start <= date <= end
	FindTemperatureAggregate(ctx context.Context, start time.Time, end time.Time) (entity.TemperatureAggregate, error)
}
