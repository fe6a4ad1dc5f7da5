package ratelimit

import (
	"context"

	"climate-api/internal/domain/model"
)

type RateLimitGateway interface {
	Allow(ctx context.Context, key string) (model.RateLimitDecision, error)
	Health(ctx context.Context) model.ComponentHealthStatus
}
