package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
)

// SendMessage marshals body to JSON and sends it to the named queue. A unique
// message identifier is attached as a message attribute. Returns
// ErrQueueNotFound when the queue does not exist.
func (c *Client) SendMessage(ctx context.Context, queue string, body any) (*sqs.SendMessageOutput, error) {
	url, err := c.GetQueueURL(ctx, queue)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding message body: %w", err)
	}

	out, err := c.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(url),
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			c.msgIDKey: {
				DataType:    awsStringDataType,
				StringValue: aws.String(uuid.NewString()),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sending message to %s: %w", queue, err)
	}

	return out, nil
}
