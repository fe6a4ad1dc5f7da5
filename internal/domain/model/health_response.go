package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp       HealthStatus = "UP"
	StatusDown     HealthStatus = "DOWN"
	StatusDisabled HealthStatus = "DISABLED"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status      HealthStatus          `json:"status"`
	Database    ComponentHealthStatus `json:"database"`
	RateLimiter ComponentHealthStatus `json:"rateLimiter"`
	Queue       ComponentHealthStatus `json:"queue"`
}

// ComponentDown builds a DOWN status carrying the error message
func ComponentDown(err error) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status: StatusDown,
		Details: map[string]string{
			"message": err.Error(),
		},
	}
}

// ComponentDisabled builds the status of a component turned off by configuration
func ComponentDisabled() ComponentHealthStatus {
	return ComponentHealthStatus{
		Status: StatusDisabled,
		Details: map[string]string{
			"message": string(StatusDisabled),
		},
	}
}
