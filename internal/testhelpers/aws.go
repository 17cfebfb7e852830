// Package testhelpers spins up throwaway infrastructure for integration tests.
package testhelpers

import (
	"context"
	"net"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

type LocalStackContainer struct {
	Config aws.Config

	*localstack.LocalStackContainer
}

// CreateLocalStackContainer starts a localstack container running SQS and
// returns an AWS config pointing at it.
func CreateLocalStackContainer(ctx context.Context) (*LocalStackContainer, error) {
	lsContainer, err := localstack.Run(ctx,
		"localstack/localstack:3.0.2",
		testcontainers.CustomizeRequest(testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Env: map[string]string{"SERVICES": "sqs"},
			},
		}),
	)
	if err != nil {
		return nil, err
	}

	host, err := lsContainer.Host(ctx)
	if err != nil {
		return nil, err
	}

	port, err := lsContainer.MappedPort(ctx, nat.Port("4566/tcp"))
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("eu-west-1"),
		config.WithBaseEndpoint("http://"+net.JoinHostPort(host, port.Port())),
	)
	if err != nil {
		return nil, err
	}

	return &LocalStackContainer{
		awsCfg,
		lsContainer,
	}, nil
}
