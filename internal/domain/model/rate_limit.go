package model

import "time"

// RateLimitDecision is the limiter verdict for one request
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}
