package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"climate-api/internal/domain/gateway/queue"
	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/pkg/util/dateutils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const messageType = "climate-report"

// ErrPublish marks a report that was built but could not be sent
var ErrPublish = errors.New("publish climate report")

type reportUseCase struct {
	climate   climate.UseCase
	sender    queue.Sender
	queueName string
	now       func() time.Time
}

func NewReportUseCase(climateUseCase climate.UseCase, sender queue.Sender, queueName string) UseCase {
	return &reportUseCase{
		climate:   climateUseCase,
		sender:    sender,
		queueName: queueName,
		now:       time.Now,
	}
}

func (useCase *reportUseCase) Build(ctx context.Context) (model.ClimateReport, error) {
	recent, err := useCase.climate.MostRecentDate(ctx)
	if err != nil {
		return model.ClimateReport{}, err
	}
	// First day inside the trailing year, so the summary covers the same days as the temperatures
	trailingStart := dateutils.AddYears(recent, -1).AddDate(0, 0, 1)

	report := model.ClimateReport{
		ID:                uuid.NewString(),
		GeneratedAt:       useCase.now().UTC().Format(time.RFC3339),
		MostRecentDate:    dateutils.Format(recent),
		TrailingYearStart: dateutils.Format(trailingStart),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		stations, err := useCase.climate.ListStations(groupCtx)
		if err != nil {
			return fmt.Errorf("list stations: %w", err)
		}
		report.Stations = stations
		return nil
	})

	group.Go(func() error {
		temperatures, err := useCase.climate.RecentTemperatures(groupCtx)
		if err != nil {
			return fmt.Errorf("recent temperatures: %w", err)
		}
		report.RecentTemperatureCount = len(temperatures)
		return nil
	})

	group.Go(func() error {
		summary, err := useCase.climate.TemperatureStats(groupCtx, trailingStart, recent)
		if errors.Is(err, climate.ErrNoObservationsInRange) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("trailing year summary: %w", err)
		}
		report.TrailingYear = &summary
		return nil
	})

	if err := group.Wait(); err != nil {
		return model.ClimateReport{}, err
	}

	return report, nil
}

func (useCase *reportUseCase) Publish(ctx context.Context) (model.ClimateReport, error) {
	report, err := useCase.Build(ctx)
	if err != nil {
		return model.ClimateReport{}, err
	}

	_, err = useCase.sender.SendMessage(ctx, useCase.queueName, report, map[string]string{
		"type":      messageType,
		"report_id": report.ID,
	})
	if err != nil {
		return model.ClimateReport{}, fmt.Errorf("%w %s: %w", ErrPublish, report.ID, err)
	}

	return report, nil
}
