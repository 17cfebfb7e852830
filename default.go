package sqs

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// The package level functions operate on a process wide default client for
// applications that do not need multiple clients. Call Init (or
// InitWithClient) once at startup, before Init every operation fails with
// ErrNotInitialized.
var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// Init configures the default client using the default AWS configuration.
func Init(ctx context.Context, opts ...Option) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading aws config from default: %w", err)
	}

	InitWithClient(sqs.NewFromConfig(cfg), opts...)

	return nil
}

// InitWithClient configures the default client with the given SQS service
// client.
func InitWithClient(svc SQSClient, opts ...Option) {
	defaultMu.Lock()
	defaultClient = New(svc, opts...)
	defaultMu.Unlock()
}

// Reset clears the default client. Mainly a test hook.
func Reset() {
	defaultMu.Lock()
	defaultClient = nil
	defaultMu.Unlock()
}

// Default returns the default client, or ErrNotInitialized before Init.
func Default() (*Client, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	if defaultClient == nil {
		return nil, ErrNotInitialized
	}

	return defaultClient, nil
}

// GetQueueURL resolves a queue name to its URL using the default client.
func GetQueueURL(ctx context.Context, queue string) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}

	return c.GetQueueURL(ctx, queue)
}

// GetQueueARN resolves a queue name to its ARN using the default client.
func GetQueueARN(ctx context.Context, queue string) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}

	return c.GetQueueARN(ctx, queue)
}

// CreateQueue creates a queue using the default client.
func CreateQueue(ctx context.Context, queue string, attrs map[string]string) (string, error) {
	c, err := Default()
	if err != nil {
		return "", err
	}

	return c.CreateQueue(ctx, queue, attrs)
}

// SendMessage sends a message using the default client.
func SendMessage(ctx context.Context, queue string, body any) (*sqs.SendMessageOutput, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	return c.SendMessage(ctx, queue, body)
}

// ReceiveMessages receives a batch of messages using the default client.
func ReceiveMessages(ctx context.Context, queue string, opts ReceiveOptions) ([]Message, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	return c.ReceiveMessages(ctx, queue, opts)
}

// DeleteMessage deletes a message using the default client.
func DeleteMessage(ctx context.Context, queue, receiptHandle string) error {
	c, err := Default()
	if err != nil {
		return err
	}

	return c.DeleteMessage(ctx, queue, receiptHandle)
}

// Poll runs a poll loop using the default client.
func Poll(ctx context.Context, queue string, handler Handler, opts PollOptions) error {
	c, err := Default()
	if err != nil {
		return err
	}

	return c.Poll(ctx, queue, handler, opts)
}
