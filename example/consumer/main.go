// Command consumer polls a queue and prints every received message.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/nielskrijger/sqs"
	sqslog "github.com/nielskrijger/sqs/log"
	"github.com/nielskrijger/sqs/notify"
)

type conf struct {
	Queue       string `env:"QUEUE_NAME,required"`
	MaxMessages int    `env:"MAX_MESSAGES" envDefault:"10"`
	WaitSeconds int    `env:"WAIT_SECONDS" envDefault:"20"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg conf
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	notifier := notify.New()
	notifier.On(sqslog.New(logger))

	client, err := sqs.NewFromDefault(ctx, sqs.WithNotifier(notifier))
	if err != nil {
		return err
	}

	return client.Poll(ctx, cfg.Queue, func(_ context.Context, msgs []sqs.Message) (sqs.Result, error) {
		for _, msg := range msgs {
			logger.Info("received message",
				zap.String("id", msg.ID),
				zap.ByteString("body", msg.Body),
			)
		}

		return sqs.Continue, nil
	}, sqs.PollOptions{
		ReceiveOptions: sqs.ReceiveOptions{
			MaxMessages: cfg.MaxMessages,
			WaitSeconds: cfg.WaitSeconds,
		},
	})
}
