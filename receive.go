package sqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

const (
	defaultMaxMessages = 1
	maxMaxMessages     = 10
	maxWaitSeconds     = 20
)

// ReceiveOptions bounds a single receive call.
type ReceiveOptions struct {
	// MaxMessages is the maximum batch size, clamped to [1, 10]. Zero means 1.
	MaxMessages int
	// WaitSeconds enables long polling, clamped to [0, 20]. Zero returns
	// immediately when the queue is empty.
	WaitSeconds int
}

func (o ReceiveOptions) maxMessages() int32 {
	switch {
	case o.MaxMessages < 1:
		return defaultMaxMessages
	case o.MaxMessages > maxMaxMessages:
		return maxMaxMessages
	}

	return int32(o.MaxMessages)
}

func (o ReceiveOptions) waitSeconds() int32 {
	switch {
	case o.WaitSeconds < 0:
		return 0
	case o.WaitSeconds > maxWaitSeconds:
		return maxWaitSeconds
	}

	return int32(o.WaitSeconds)
}

// ReceiveMessages receives a batch of messages from the named queue. Messages
// with a body that is not valid JSON are dropped from the result, they remain
// in the queue for redelivery. Returns ErrQueueNotFound when the queue does
// not exist.
func (c *Client) ReceiveMessages(ctx context.Context, queue string, opts ReceiveOptions) ([]Message, error) {
	url, err := c.GetQueueURL(ctx, queue)
	if err != nil {
		return nil, err
	}

	out, err := c.svc.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(url),
		MaxNumberOfMessages:   opts.maxMessages(),
		WaitTimeSeconds:       opts.waitSeconds(),
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, fmt.Errorf("receiving messages from %s: %w", queue, err)
	}

	return c.decodeMessages(queue, out.Messages), nil
}

// DeleteMessage deletes a received message from the named queue by its
// receipt handle. Returns ErrQueueNotFound when the queue does not exist.
func (c *Client) DeleteMessage(ctx context.Context, queue, receiptHandle string) error {
	url, err := c.GetQueueURL(ctx, queue)
	if err != nil {
		return err
	}

	if _, err := c.svc.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(url),
		ReceiptHandle: aws.String(receiptHandle),
	}); err != nil {
		return fmt.Errorf("deleting message from %s: %w", queue, err)
	}

	return nil
}
