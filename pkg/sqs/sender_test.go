package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQSClient struct {
	queueURLCalls int
	sent          []*sqs.SendMessageInput
	sendErr       error
}

func (f *fakeSQSClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	f.queueURLCalls++
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost:4566/000000000000/" + aws.ToString(params.QueueName))}, nil
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, params)
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSendMessage_SerializesBodyAndAttributes(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client, nil)

	id, err := sender.SendMessage(context.Background(), "climate-report", map[string]int{"count": 3}, map[string]string{"type": "climate-report"})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "http://localhost:4566/000000000000/climate-report", aws.ToString(client.sent[0].QueueUrl))
	assert.JSONEq(t, `{"count":3}`, aws.ToString(client.sent[0].MessageBody))
	assert.Equal(t, "climate-report", aws.ToString(client.sent[0].MessageAttributes["type"].StringValue))
}

func TestSendMessage_CachesQueueURL(t *testing.T) {
	client := &fakeSQSClient{}
	sender := NewSender(client, nil)

	for i := 0; i < 3; i++ {
		_, err := sender.SendMessage(context.Background(), "climate-report", i, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, client.queueURLCalls)
	assert.Nil(t, client.sent[0].MessageAttributes)
}

func TestSendMessage_InvalidBody(t *testing.T) {
	client := &fakeSQSClient{}

	_, err := NewSender(client, nil).SendMessage(context.Background(), "q", func() {}, nil)

	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
	assert.Empty(t, client.sent)
}

func TestSendMessage_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	sendErr := errors.New("connection refused")
	client := &fakeSQSClient{sendErr: sendErr}
	sender := NewSender(client, &SenderConfig{ConsecutiveFailures: 2, OpenTimeout: time.Hour})

	for i := 0; i < 2; i++ {
		_, err := sender.SendMessage(context.Background(), "q", "body", nil)
		assert.ErrorIs(t, err, sendErr)
	}
	assert.Equal(t, "open", sender.State())

	_, err := sender.SendMessage(context.Background(), "q", "body", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestState_ClosedByDefault(t *testing.T) {
	assert.Equal(t, "closed", NewSender(&fakeSQSClient{}, nil).State())
}
