package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/sony/gobreaker/v2"
)

// ErrUnavailable is returned while the circuit breaker rejects sends
var ErrUnavailable = errors.New("sqs sender unavailable")

// SQSClient defines the interface for SQS operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SenderConfig tunes the circuit breaker wrapped around SendMessage
type SenderConfig struct {
	// ConsecutiveFailures opens the breaker once exceeded
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again
	OpenTimeout time.Duration
}

// Sender handles sending JSON messages to SQS queues
type Sender struct {
	sqsClient SQSClient
	breaker   *gobreaker.CircuitBreaker[*sqs.SendMessageOutput]
	queueURLs sync.Map
}

// NewSender creates and returns a new Sender.
// A nil config defaults to opening after 3 consecutive failures for 1 minute.
func NewSender(sqsClient SQSClient, config *SenderConfig) *Sender {
	failures := uint32(3)
	openTimeout := time.Minute
	if config != nil {
		if config.ConsecutiveFailures > 0 {
			failures = config.ConsecutiveFailures
		}
		if config.OpenTimeout > 0 {
			openTimeout = config.OpenTimeout
		}
	}

	breaker := gobreaker.NewCircuitBreaker[*sqs.SendMessageOutput](gobreaker.Settings{
		Name:        "sqs-sender",
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})

	return &Sender{
		sqsClient: sqsClient,
		breaker:   breaker,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue.
// It returns the SQS message id.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	output, err := s.breaker.Execute(func() (*sqs.SendMessageOutput, error) {
		queueURL, err := s.getQueueURL(ctx, queueName)
		if err != nil {
			return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
		}

		return s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:          aws.String(queueURL),
			MessageBody:       aws.String(string(jsonBody)),
			MessageAttributes: toMessageAttributes(attributes),
		})
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err != nil {
		return "", fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return aws.ToString(output.MessageId), nil
}

// State returns the circuit breaker state: closed, half-open or open
func (s *Sender) State() string {
	return s.breaker.State().String()
}

// getQueueURL resolves and memoizes the URL for the specified queue name
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	if cached, ok := s.queueURLs.Load(queueName); ok {
		return cached.(string), nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queueName),
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.queueURLs.Store(queueName, *result.QueueUrl)
	return *result.QueueUrl, nil
}

func toMessageAttributes(attributes map[string]string) map[string]types.MessageAttributeValue {
	if len(attributes) == 0 {
		return nil
	}
	result := make(map[string]types.MessageAttributeValue, len(attributes))
	for key, value := range attributes {
		result[key] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(value),
		}
	}
	return result
}
