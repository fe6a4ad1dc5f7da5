package queue

import (
	"climate-api/internal/domain/model"
	"climate-api/pkg/sqs"
)

// SQSHealthGateway reports the publisher circuit breaker; a nil sender means reporting is disabled
type SQSHealthGateway struct {
	sender    *sqs.Sender
	queueName string
}

func NewSQSHealthGateway(sender *sqs.Sender, queueName string) *SQSHealthGateway {
	return &SQSHealthGateway{sender: sender, queueName: queueName}
}

func (gateway *SQSHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.sender == nil {
		return model.ComponentDisabled()
	}

	state := gateway.sender.State()
	status := model.StatusUp
	if state == "open" {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"queue":   gateway.queueName,
			"breaker": state,
		},
	}
}
