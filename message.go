package sqs

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/nielskrijger/sqs/notify"
)

// Message is a received queue message with a JSON body.
type Message struct {
	// ID is the unique message identifier, taken from the message id
	// attribute set on send, falling back to the SQS message id.
	ID string
	// ReceiptHandle identifies this delivery of the message and is required
	// to delete it.
	ReceiptHandle string
	// Body is the validated JSON payload.
	Body json.RawMessage
}

// Decode unmarshals the message body into v.
func (m Message) Decode(v any) error {
	return json.Unmarshal(m.Body, v)
}

// decodeMessages parses raw SQS messages into Messages, preserving order.
// Messages without a valid JSON body are reported and dropped, they are not
// deleted so SQS redelivers them after the visibility timeout.
func (c *Client) decodeMessages(queue string, raw []types.Message) []Message {
	msgs := make([]Message, 0, len(raw))
	for _, rm := range raw {
		body := []byte(aws.ToString(rm.Body))
		if !json.Valid(body) {
			c.notifier.Publish(notify.Event{
				Level:   notify.LevelError,
				Queue:   queue,
				Message: "dropping message with invalid json body",
				Detail: map[string]string{
					"sqs_message_id": aws.ToString(rm.MessageId),
					"body":           string(body),
				},
			})

			continue
		}

		id := aws.ToString(rm.MessageId)
		if attr, ok := rm.MessageAttributes[c.msgIDKey]; ok {
			id = aws.ToString(attr.StringValue)
		}

		msgs = append(msgs, Message{
			ID:            id,
			ReceiptHandle: aws.ToString(rm.ReceiptHandle),
			Body:          json.RawMessage(body),
		})
	}

	return msgs
}
