package ports

import "errors"

type Topic interface {
	Code() int
	Label() string
}

type Subscription interface {
	Id() string
	Topic() Topic
	NotifyAt() string
	IsSecured() bool
}

// SecurePubSub defines the methods of a pubsub service that notifies
// subscribers at their endpoint, optionally authenticating every message
// with the secret they subscribed with.
type SecurePubSub interface {
	// Subscribe adds a subscription for a topic and returns its id.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id.
	Unsubscribe(id string) error
	// ListSubscriptionsForTopic returns the info of all clients subscribed for
	// a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients subscribed
	// for such topic will receive the message.
	Publish(topic string, message string) error
	// TopicsByCode returns the all the topics supported by the service mapped
	// by their code.
	TopicsByCode() map[int]Topic
	// TopicsByLabel returns the all the topics supported by the service mapped
	// by their label.
	TopicsByLabel() map[string]Topic
	// Close gracefully closes the internal store.
	Close() error
}

var (
	// ErrInvalidSubscription is the class of errors returned when the info of
	// a subscription are not valid.
	ErrInvalidSubscription = errors.New("invalid subscription")
	// ErrSubscriptionNotFound is returned when the given subscription id is
	// unknown.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
