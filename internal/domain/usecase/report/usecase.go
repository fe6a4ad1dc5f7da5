package report

import (
	"context"

	"climate-api/internal/domain/model"
)

type UseCase interface {
	// Build assembles a climate report from the observation store
	Build(ctx context.Context) (model.ClimateReport, error)

	// Publish builds a report and sends it to the report queue
	Publish(ctx context.Context) (model.ClimateReport, error)
}
