// Command publisher sends a JSON message read from the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/nielskrijger/sqs"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) != 3 {
		return fmt.Errorf("usage: %s <queue> <json-body>", os.Args[0])
	}
	queue, raw := os.Args[1], os.Args[2]

	var body any
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return fmt.Errorf("parsing body: %w", err)
	}

	ctx := context.Background()

	client, err := sqs.NewFromDefault(ctx)
	if err != nil {
		return err
	}

	if _, err := client.CreateQueue(ctx, queue, nil); err != nil {
		return err
	}

	out, err := client.SendMessage(ctx, queue, body)
	if err != nil {
		return err
	}

	log.Printf("sent message %s", aws.ToString(out.MessageId))

	return nil
}
