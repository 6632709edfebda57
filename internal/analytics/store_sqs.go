package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// sqsAPI is the slice of the SQS client the store needs.
type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSStore forwards events to an SQS queue, where a downstream consumer
// lands them in the warehouse. Used when running on Lambda so the API
// does not need a database connection for analytics.
type SQSStore struct {
	Client   sqsAPI
	QueueURL string
}

// NewSQSStore resolves AWS credentials from the environment and
// returns a store bound to queueURL.
func NewSQSStore(ctx context.Context, queueURL string) (*SQSStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SQSStore{
		Client:   sqs.NewFromConfig(cfg),
		QueueURL: queueURL,
	}, nil
}

func (s *SQSStore) Insert(ctx context.Context, event Event) error {
	body, err := EncodeEvent(event)
	if err != nil {
		return err
	}
	_, err = s.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.QueueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("send analytics event %s: %w", event.ID, err)
	}
	return nil
}

// EncodeEvent serializes an event for the queue.
func EncodeEvent(event Event) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("encode analytics event: %w", err)
	}
	return string(data), nil
}

// DecodeEvent parses a queue message body back into an event.
func DecodeEvent(body string) (Event, error) {
	var event Event
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		return Event{}, fmt.Errorf("decode analytics event: %w", err)
	}
	return event, nil
}
