package health

import (
	"context"

	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/gateway/queue"
	"climate-api/internal/domain/gateway/ratelimit"
	"climate-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway        db.HealthDBGateway
	rateLimitGateway ratelimit.RateLimitGateway
	queueGateway     queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, rateLimitGateway ratelimit.RateLimitGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:        dbGateway,
		rateLimitGateway: rateLimitGateway,
		queueGateway:     queueGateway,
	}
}

// CheckHealth is DOWN when any enabled component is down; disabled components do not count
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	rateLimitHealth := useCase.rateLimitGateway.Health(ctx)
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, rateLimitHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:      overallStatus,
		Database:    dbHealth,
		RateLimiter: rateLimitHealth,
		Queue:       queueHealth,
	}
}
