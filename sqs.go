// Package sqs is a thin client for AWS SQS that adds queue discovery with
// process lifetime caching, JSON message encoding and decoding, and a
// resilient polling loop that dispatches message batches to a handler.
package sqs

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

var awsStringDataType = aws.String("String") //nolint: gochecknoglobals // aws constant

//go:generate go tool moq -pkg sqs_test -stub -out sqsclient_mock_test.go . SQSClient

// SQSClient defines the AWS SQS methods used by the Client. This is used for
// testing purposes.
type SQSClient interface {
	CreateQueue(
		context.Context,
		*sqs.CreateQueueInput,
		...func(*sqs.Options),
	) (*sqs.CreateQueueOutput, error)
	DeleteMessage(
		context.Context,
		*sqs.DeleteMessageInput,
		...func(*sqs.Options),
	) (*sqs.DeleteMessageOutput, error)
	GetQueueAttributes(
		context.Context,
		*sqs.GetQueueAttributesInput,
		...func(*sqs.Options),
	) (*sqs.GetQueueAttributesOutput, error)
	GetQueueUrl(
		context.Context,
		*sqs.GetQueueUrlInput,
		...func(*sqs.Options),
	) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(
		context.Context,
		*sqs.ReceiveMessageInput,
		...func(*sqs.Options),
	) (*sqs.ReceiveMessageOutput, error)
	SendMessage(
		context.Context,
		*sqs.SendMessageInput,
		...func(*sqs.Options),
	) (*sqs.SendMessageOutput, error)
}

// NewFromDefault returns a new Client using the default AWS configuration.
func NewFromDefault(ctx context.Context, opts ...Option) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return New(sqs.NewFromConfig(cfg), opts...), nil
}
