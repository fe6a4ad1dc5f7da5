package queue

import "context"

// Sender publishes JSON messages to a named queue
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error)
}
