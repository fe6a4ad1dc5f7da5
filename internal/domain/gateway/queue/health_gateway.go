package queue

import "climate-api/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
