package climate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
	"climate-api/pkg/log"
	"climate-api/pkg/util/dateutils"
)

type climateUseCase struct {
	gateway  db.ObservationGateway
	resolver *DateResolver
}

func NewClimateUseCase(gateway db.ObservationGateway) UseCase {
	return &climateUseCase{
		gateway:  gateway,
		resolver: NewDateResolver(gateway),
	}
}

func (useCase *climateUseCase) PrecipitationByDate(ctx context.Context) (map[string]*float64, error) {
	readings, err := useCase.gateway.FindAllPrecipitation(ctx)
	if err != nil {
		return nil, err
	}

	precipitation := make(map[string]*float64, len(readings))
	for _, reading := range readings {
		date, err := dateutils.Parse(reading.Date)
		if err != nil {
			return nil, fmt.Errorf("stored observation date %q is corrupt: %w", reading.Date, err)
		}
		// Last write wins: stations sharing a date overwrite each other.
		precipitation[dateutils.Format(date)] = reading.Precipitation
	}

	return precipitation, nil
}

func (useCase *climateUseCase) ListStations(ctx context.Context) ([]string, error) {
	return useCase.gateway.FindDistinctStationNames(ctx)
}

func (useCase *climateUseCase) RecentTemperatures(ctx context.Context) ([]float64, error) {
	recent, err := useCase.resolver.MostRecentDate(ctx)
	if err != nil {
		return nil, err
	}
	yearAgo := useCase.resolver.OneYearBefore(recent)

	log.Debugf("Reading temperatures after %s through %s", dateutils.Format(yearAgo), dateutils.Format(recent))

	return useCase.gateway.FindTemperatures(ctx, yearAgo, recent)
}

func (useCase *climateUseCase) TemperatureStats(ctx context.Context, start time.Time, end time.Time) (model.TemperatureSummary, error) {
	if end.Before(start) {
		return model.TemperatureSummary{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, dateutils.Format(start), dateutils.Format(end))
	}

	aggregate, err := useCase.gateway.FindTemperatureAggregate(ctx, start, end)
	if err != nil {
		return model.TemperatureSummary{}, err
	}
	if aggregate.Count == 0 || aggregate.Min == nil || aggregate.Avg == nil || aggregate.Max == nil {
		return model.TemperatureSummary{}, ErrNoObservationsInRange
	}

	return model.TemperatureSummary{
		Min: *aggregate.Min,
		Avg: *aggregate.Avg,
		Max: *aggregate.Max,
	}, nil
}

func (useCase *climateUseCase) TemperatureStatsFromStart(ctx context.Context, start time.Time) (model.TemperatureSummary, error) {
	recent, err := useCase.resolver.MostRecentDate(ctx)
	if errors.Is(err, ErrEmptyDataset) {
		return model.TemperatureSummary{}, ErrNoObservationsInRange
	}
	if err != nil {
		return model.TemperatureSummary{}, err
	}
	// A start after the dataset ends is an empty window, not a caller error.
	if recent.Before(start) {
		return model.TemperatureSummary{}, ErrNoObservationsInRange
	}

	return useCase.TemperatureStats(ctx, start, recent)
}

func (useCase *climateUseCase) MostRecentDate(ctx context.Context) (time.Time, error) {
	return useCase.resolver.MostRecentDate(ctx)
}
