package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript counts a hit in the current window and returns {count, ttl_ms}.
// The expiry is set only by the first hit so the window never slides.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call("INCR", KEYS[1])
	if current == 1 then
		redis.call("PEXPIRE", KEYS[1], ARGV[1])
	end
	return {current, redis.call("PTTL", KEYS[1])}
`)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// Limit is the number of hits allowed per window
	Limit int
	// Window is the fixed window length
	Window time.Duration
	// Namespace prefixes every counter key
	Namespace string
}

// NewRateLimiterOptions creates rate limiter options allowing limit hits per minute
func NewRateLimiterOptions(limit int) *RateLimiterOptions {
	return &RateLimiterOptions{
		Limit:     limit,
		Window:    time.Minute,
		Namespace: "rate-limit",
	}
}

// Validate validates the rate limiter options
func (rlo *RateLimiterOptions) Validate() error {
	if rlo.Limit <= 0 {
		return fmt.Errorf("invalid limit: %d, must be positive", rlo.Limit)
	}
	if rlo.Window < time.Millisecond {
		return fmt.Errorf("invalid window: %v, must be at least 1ms", rlo.Window)
	}
	return nil
}

// Decision is the outcome of a single Allow call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// RateLimiter is a distributed fixed-window counter shared by every instance using the same Redis
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
	now    func() time.Time
}

// NewRateLimiter creates a new distributed rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) (*RateLimiter, error) {
	if opts == nil {
		return nil, fmt.Errorf("rate limiter options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &RateLimiter{
		client: client,
		opts:   opts,
		now:    time.Now,
	}, nil
}

// Allow records a hit for key and reports whether it fits in the current window
func (rl *RateLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	result, err := fixedWindowScript.Run(ctx, rl.client.GetClient(), []string{rl.windowKey(key)}, rl.opts.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(result) != 2 {
		return Decision{}, fmt.Errorf("rate limit %s: unexpected script reply %v", key, result)
	}

	count, ttl := int(result[0]), time.Duration(result[1])*time.Millisecond
	if ttl < 0 {
		ttl = rl.opts.Window
	}

	remaining := rl.opts.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= rl.opts.Limit,
		Limit:     rl.opts.Limit,
		Remaining: remaining,
		ResetIn:   ttl,
	}, nil
}

// windowKey buckets the key by window index
func (rl *RateLimiter) windowKey(key string) string {
	window := rl.now().UnixMilli() / rl.opts.Window.Milliseconds()
	return rl.opts.Namespace + ":" + key + ":" + strconv.FormatInt(window, 10)
}

// Client returns the Redis client backing the limiter
func (rl *RateLimiter) Client() *Client {
	return rl.client
}
