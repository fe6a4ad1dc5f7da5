package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"climate-api/internal/domain/usecase/report"
	"climate-api/pkg/log"
	"climate-api/pkg/msg"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reportTimeout = time.Minute

type ReportScheduler struct {
	cron       *cron.Cron
	useCase    report.UseCase
	expression string
	queueName  string
}

// NewReportScheduler validates the standard 5-field cron expression before anything is scheduled
func NewReportScheduler(useCase report.UseCase, expression string, queueName string) (*ReportScheduler, error) {
	if _, err := cron.ParseStandard(expression); err != nil {
		return nil, fmt.Errorf("%s: %w", msg.GetMessage("report.error.invalid-cron", expression), err)
	}

	return &ReportScheduler{
		cron:       cron.New(cron.WithLogger(cron.DiscardLogger)),
		useCase:    useCase,
		expression: expression,
		queueName:  queueName,
	}, nil
}

// InitReportScheduleTasks registers the report job and starts the cron
func (scheduler *ReportScheduler) InitReportScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.expression, scheduler.PublishReport); err != nil {
		return fmt.Errorf("schedule climate report: %w", err)
	}

	scheduler.cron.Start()
	log.Infof("Climate report scheduler started with cron expression: %s", scheduler.expression)
	return nil
}

func (scheduler *ReportScheduler) PublishReport() {
	log.Info(msg.GetMessage("report.cron.start"))

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	climateReport, err := scheduler.useCase.Publish(ctx)
	if errors.Is(err, report.ErrPublish) {
		log.Error(msg.GetMessage("report.error.publish-failed", err), zap.Error(err))
		return
	}
	if err != nil {
		log.Error(msg.GetMessage("report.error.build-failed", err), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("report.cron.end", climateReport.ID, scheduler.queueName), zap.String("report_id", climateReport.ID))
}

// Stop waits for a running report job to finish or ctx to expire
func (scheduler *ReportScheduler) Stop(ctx context.Context) {
	stopped := scheduler.cron.Stop()
	select {
	case <-stopped.Done():
	case <-ctx.Done():
	}
}
