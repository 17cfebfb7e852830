package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"golang.org/x/sync/errgroup"

	"github.com/nielskrijger/sqs/notify"
)

// Result tells the poll loop what to do after a batch was handled.
type Result int

const (
	// Continue keeps polling for the next batch.
	Continue Result = iota
	// Stop deletes the handled batch and terminates the poll loop.
	Stop
)

// Handler processes a batch of messages. Returning an error leaves the whole
// batch in the queue for redelivery and keeps polling, a handler error never
// terminates the loop. On a nil error the whole batch is deleted, so the
// handler must have fully processed every message before returning.
type Handler func(ctx context.Context, msgs []Message) (Result, error)

// PollOptions configures a poll loop.
type PollOptions struct {
	ReceiveOptions

	// StopWhenEmpty terminates the loop the first time a receive returns no
	// messages. Without it the loop runs until Stop or context cancellation,
	// set WaitSeconds to avoid a hot loop on an empty queue.
	StopWhenEmpty bool
}

// Poll receives batches from the named queue and dispatches them to handler
// until the handler returns Stop, the queue is depleted with StopWhenEmpty
// set, or ctx is cancelled. Iterations are strictly sequential, a new receive
// only starts after the previous batch is deleted.
//
// Handler, receive and delete failures are reported to the notifier and
// polling continues. The call itself only fails when the queue does not
// resolve, either up front or because it was deleted while polling.
func (c *Client) Poll(ctx context.Context, queue string, handler Handler, opts PollOptions) error {
	if _, err := c.GetQueueURL(ctx, queue); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		msgs, err := c.ReceiveMessages(ctx, queue, opts.ReceiveOptions)
		if err != nil {
			var notFound *types.QueueDoesNotExist
			if errors.Is(err, ErrQueueNotFound) || errors.As(err, &notFound) {
				return fmt.Errorf("polling %s: %w", queue, err)
			}
			if ctx.Err() != nil {
				return nil
			}

			c.notifier.Publish(notify.Event{
				Level:   notify.LevelError,
				Queue:   queue,
				Message: "receiving messages failed",
				Err:     err,
			})

			continue
		}

		if len(msgs) == 0 {
			if opts.StopWhenEmpty {
				c.notifier.Publish(notify.Event{
					Level:   notify.LevelDebug,
					Queue:   queue,
					Message: "queue depleted, stopping poll",
				})

				return nil
			}

			continue
		}

		res, err := handler(ctx, msgs)
		if err != nil {
			c.notifier.Publish(notify.Event{
				Level:   notify.LevelError,
				Queue:   queue,
				Message: "message handler failed, leaving batch for redelivery",
				Err:     err,
				Detail: map[string]string{
					"batch_size": strconv.Itoa(len(msgs)),
				},
			})

			continue
		}

		c.deleteBatch(ctx, queue, msgs)

		if res == Stop {
			c.notifier.Publish(notify.Event{
				Level:   notify.LevelDebug,
				Queue:   queue,
				Message: "handler requested stop, stopping poll",
			})

			return nil
		}
	}
}

// deleteBatch deletes every message of a handled batch. A failed delete only
// means that message reappears after the visibility timeout, so failures are
// reported and the remaining deletes still run.
func (c *Client) deleteBatch(ctx context.Context, queue string, msgs []Message) {
	for _, msg := range msgs {
		if err := c.DeleteMessage(ctx, queue, msg.ReceiptHandle); err != nil {
			c.notifier.Publish(notify.Event{
				Level:   notify.LevelError,
				Queue:   queue,
				Message: "deleting message failed",
				Err:     err,
				Detail: map[string]string{
					"message_id": msg.ID,
				},
			})
		}
	}
}

// NewPoller returns a Poller running poll loops on the given client.
func NewPoller(c *Client) *Poller {
	return &Poller{client: c}
}

// Poller runs poll loops for multiple queues concurrently. Loops are
// independent, there is no ordering guarantee across queues.
type Poller struct {
	client *Client
	subs   []pollSubscription
}

type pollSubscription struct {
	queue   string
	handler Handler
	opts    PollOptions
}

// Register adds a poll loop for the named queue. Registering the same queue
// twice returns ErrDuplicateSubscription.
func (p *Poller) Register(queue string, handler Handler, opts PollOptions) error {
	for _, sub := range p.subs {
		if sub.queue == queue {
			return fmt.Errorf("%s: %w", queue, ErrDuplicateSubscription)
		}
	}

	p.subs = append(p.subs, pollSubscription{queue, handler, opts})

	return nil
}

// Listen starts all registered poll loops and blocks until they all stop.
// The first loop failure cancels the remaining loops.
func (p *Poller) Listen(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, sub := range p.subs {
		g.Go(func() error {
			return p.client.Poll(ctx, sub.queue, sub.handler, sub.opts)
		})
	}

	return g.Wait()
}
