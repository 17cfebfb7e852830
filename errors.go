package sqs

import "errors"

var (
	// ErrNotInitialized is returned by the package level operations when Init
	// has not been called yet.
	ErrNotInitialized = errors.New("client not initialized")

	// ErrQueueNotFound is returned when a queue name does not resolve to a
	// queue URL.
	ErrQueueNotFound = errors.New("queue not found")

	// ErrDuplicateSubscription is returned when registering a queue that is
	// already registered on a Poller.
	ErrDuplicateSubscription = errors.New("duplicate subscription")
)
