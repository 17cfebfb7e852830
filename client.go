package sqs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/nielskrijger/sqs/log"
	"github.com/nielskrijger/sqs/notify"
)

// defaultMessageIDKey is the message attribute carrying the unique message
// identifier set on send.
const defaultMessageIDKey = "message_id"

// Option is a function to set options to Client.
type Option func(*Client)

// WithNotifier replaces the default notifier.
func WithNotifier(n *notify.Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithListener registers an extra listener on the client notifier.
func WithListener(l notify.Listener) Option {
	return func(c *Client) {
		c.notifier.On(l)
	}
}

// WithMessageIDKey replaces the default message attribute key used to carry
// the message identifier.
func WithMessageIDKey(key string) Option {
	return func(c *Client) {
		c.msgIDKey = key
	}
}

// New returns a new Client instance.
func New(svc SQSClient, opts ...Option) *Client {
	n := notify.New()
	n.On(log.NewDefault())

	c := Client{
		svc:      svc,
		notifier: n,
		msgIDKey: defaultMessageIDKey,
		urls:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(&c)
	}

	return &c
}

// Client wraps an SQS service client with queue URL caching and JSON message
// handling. All methods are safe for concurrent use.
type Client struct {
	svc      SQSClient
	notifier *notify.Notifier
	msgIDKey string

	mu sync.RWMutex
	// urls caches queue name to queue URL resolutions for the lifetime of the
	// client. Failed resolutions are never cached.
	urls map[string]string
}

// GetQueueURL resolves a queue name to its queue URL. The first successful
// resolution is cached, subsequent calls do not hit SQS. Returns
// ErrQueueNotFound when the queue does not exist.
func (c *Client) GetQueueURL(ctx context.Context, queue string) (string, error) {
	if queue == "" {
		return "", ErrQueueNotFound
	}

	c.mu.RLock()
	url, ok := c.urls[queue]
	c.mu.RUnlock()
	if ok {
		return url, nil
	}

	out, err := c.svc.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		var notFound *types.QueueDoesNotExist
		if errors.As(err, &notFound) {
			c.notifier.Publish(notify.Event{
				Level:   notify.LevelDebug,
				Queue:   queue,
				Message: "queue does not exist",
			})

			return "", fmt.Errorf("%s: %w", queue, ErrQueueNotFound)
		}

		return "", fmt.Errorf("resolving queue url %s: %w", queue, err)
	}

	url = aws.ToString(out.QueueUrl)

	c.mu.Lock()
	c.urls[queue] = url
	c.mu.Unlock()

	return url, nil
}

// GetQueueARN resolves a queue name to its queue ARN. Returns
// ErrQueueNotFound when the queue does not exist.
func (c *Client) GetQueueARN(ctx context.Context, queue string) (string, error) {
	url, err := c.GetQueueURL(ctx, queue)
	if err != nil {
		return "", err
	}

	out, err := c.svc.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(url),
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return "", fmt.Errorf("fetching queue arn %s: %w", queue, err)
	}

	return out.Attributes[string(types.QueueAttributeNameQueueArn)], nil
}

// CreateQueue creates a queue with the given attributes and returns its URL.
// When the queue already exists it returns the existing URL without touching
// the queue, SQS forbids redefining attributes of an existing queue.
func (c *Client) CreateQueue(ctx context.Context, queue string, attrs map[string]string) (string, error) {
	url, err := c.GetQueueURL(ctx, queue)
	if err == nil {
		c.notifier.Publish(notify.Event{
			Level:   notify.LevelInfo,
			Queue:   queue,
			Message: "queue already exists, skipping create",
		})

		return url, nil
	}
	if !errors.Is(err, ErrQueueNotFound) {
		return "", err
	}

	out, err := c.svc.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName:  aws.String(queue),
		Attributes: attrs,
	})
	if err != nil {
		return "", fmt.Errorf("creating queue %s: %w", queue, err)
	}

	url = aws.ToString(out.QueueUrl)

	c.mu.Lock()
	c.urls[queue] = url
	c.mu.Unlock()

	return url, nil
}
