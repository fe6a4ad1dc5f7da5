package schedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReportUseCase struct {
	calls int
	err   error
}

func (u *countingReportUseCase) Build(context.Context) (model.ClimateReport, error) {
	return model.ClimateReport{ID: "r-1"}, u.err
}

func (u *countingReportUseCase) Publish(ctx context.Context) (model.ClimateReport, error) {
	u.calls++
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return model.ClimateReport{}, errors.New("publish without deadline")
	}
	return u.Build(ctx)
}

func TestNewReportScheduler_InvalidCron(t *testing.T) {
	_, err := NewReportScheduler(&countingReportUseCase{}, "every day", "climate-report")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid report cron expression every day")
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, errors.Unwrap(err).Error(), "expected exactly 5 fields")
}

func TestPublishReport(t *testing.T) {
	cases := map[string]error{
		"published":      nil,
		"build failed":   errors.New("empty"),
		"publish failed": fmt.Errorf("%w r-1: %w", report.ErrPublish, errors.New("open")),
	}

	for name, useCaseErr := range cases {
		t.Run(name, func(t *testing.T) {
			useCase := &countingReportUseCase{err: useCaseErr}
			scheduler, err := NewReportScheduler(useCase, "0 6 * * *", "climate-report")
			require.NoError(t, err)

			scheduler.PublishReport()

			assert.Equal(t, 1, useCase.calls)
		})
	}
}

func TestInitAndStop(t *testing.T) {
	scheduler, err := NewReportScheduler(&countingReportUseCase{}, "0 6 * * *", "climate-report")
	require.NoError(t, err)

	require.NoError(t, scheduler.InitReportScheduleTasks())
	assert.Len(t, scheduler.cron.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	scheduler.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
