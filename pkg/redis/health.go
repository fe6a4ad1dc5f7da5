package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status values reported by HealthCheck
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	stats := c.rdb.PoolStats()
	details := map[string]string{
		"host":        c.config.Host,
		"port":        strconv.Itoa(c.config.Port),
		"database":    strconv.Itoa(c.config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		"latency":     latency.String(),
	}

	if err != nil {
		details["message"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}

	return RedisHealthCheck{Status: StatusUp, Details: details}
}
