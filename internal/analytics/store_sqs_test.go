package analytics

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"toolintel-backend/internal/recommender"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSStoreSendsEncodedEvent(t *testing.T) {
	client := &fakeSQS{}
	store := &SQSStore{Client: client, QueueURL: "https://sqs.example/queue"}

	event := EventFromProfile(recommender.Profile{Category: "chat", Budget: "under10"})
	if err := store.Insert(context.Background(), event); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if input.QueueUrl == nil || *input.QueueUrl != store.QueueURL {
		t.Fatalf("queue url mismatch: %v", input.QueueUrl)
	}
	decoded, err := DecodeEvent(*input.MessageBody)
	if err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if decoded.Category != "chat" || decoded.Budget != "under10" {
		t.Fatalf("unexpected event: %+v", decoded)
	}
}
