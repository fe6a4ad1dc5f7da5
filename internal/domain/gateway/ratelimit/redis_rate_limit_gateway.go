package ratelimit

import (
	"context"

	"climate-api/internal/domain/model"
	"climate-api/pkg/redis"
)

// RedisRateLimitGateway counts requests in Redis; a nil limiter allows everything and reports DISABLED
type RedisRateLimitGateway struct {
	limiter *redis.RateLimiter
}

var _ RateLimitGateway = (*RedisRateLimitGateway)(nil)

func NewRedisRateLimitGateway(limiter *redis.RateLimiter) *RedisRateLimitGateway {
	return &RedisRateLimitGateway{limiter: limiter}
}

func (gateway *RedisRateLimitGateway) Allow(ctx context.Context, key string) (model.RateLimitDecision, error) {
	if gateway.limiter == nil {
		return model.RateLimitDecision{Allowed: true}, nil
	}

	decision, err := gateway.limiter.Allow(ctx, key)
	if err != nil {
		return model.RateLimitDecision{}, err
	}

	return model.RateLimitDecision{
		Allowed:   decision.Allowed,
		Limit:     decision.Limit,
		Remaining: decision.Remaining,
		ResetIn:   decision.ResetIn,
	}, nil
}

func (gateway *RedisRateLimitGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.limiter == nil {
		return model.ComponentDisabled()
	}

	check := gateway.limiter.Client().HealthCheck(ctx)
	status := model.StatusUp
	if check.Status != redis.StatusUp {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
