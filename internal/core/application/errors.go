package application

import "errors"

var (
	// ErrPubSubNotInitialized is returned when attempting to manage webhooks
	// without a pubsub service.
	ErrPubSubNotInitialized = errors.New("pubsub service is not initialized")
	// ErrUnknownTopic is returned for webhook actions with no matching topic.
	ErrUnknownTopic = errors.New("topic is unknown")
)
