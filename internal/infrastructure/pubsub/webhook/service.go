package webhookpubsub

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/golang-jwt/jwt"
	"github.com/sony/gobreaker"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	"github.com/tdex-network/fundraiser-daemon/pkg/circuitbreaker"
	"golang.org/x/sync/errgroup"
)

const defaultRequestTimeout = 10 * time.Second

type webhookService struct {
	store          *webhookStore
	httpClient     *client
	cb             *gobreaker.CircuitBreaker
	requestTimeout time.Duration
}

// NewWebhookPubSubService returns a pubsub service that notifies webhooks
// with a POST request. Webhooks are persisted in the given datadir, or in
// memory if it's empty.
func NewWebhookPubSubService(
	datadir string, requestTimeout time.Duration, logger badger.Logger,
) (ports.SecurePubSub, error) {
	store, err := newWebhookStore(datadir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening webhook db: %w", err)
	}

	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &webhookService{
		store:          store,
		httpClient:     newHTTPClient(requestTimeout),
		cb:             circuitbreaker.NewCircuitBreaker("webhooks"),
		requestTimeout: requestTimeout,
	}, nil
}

func (ws *webhookService) Subscribe(
	topic, endpoint, secret string,
) (string, error) {
	actionType, ok := WebhookActionFromString(topic)
	if !ok {
		return "", ErrUnknownWebhookAction
	}

	hook, err := NewWebhook(actionType, endpoint, secret)
	if err != nil {
		return "", err
	}

	if err := ws.store.add(hook); err != nil {
		return "", err
	}
	return hook.ID, nil
}

func (ws *webhookService) Unsubscribe(id string) error {
	return ws.store.remove(id)
}

func (ws *webhookService) ListSubscriptionsForTopic(
	topic string,
) []ports.Subscription {
	actionType, ok := WebhookActionFromString(topic)
	if !ok {
		return nil
	}

	hooks, err := ws.getHooksForAction(actionType)
	if err != nil {
		log.WithError(err).Warn("unable to list webhooks")
		return nil
	}

	subs := make([]ports.Subscription, 0, len(hooks))
	for i := range hooks {
		subs = append(subs, &hooks[i])
	}
	return subs
}

// Publish makes a POST request to every webhook endpoint registered for the
// given topic or for all of them.
// Every request goes through a circuit breaker in order to stop bombarding
// endpoints that keep failing.
func (ws *webhookService) Publish(topic string, message string) error {
	actionType, ok := WebhookActionFromString(topic)
	if !ok {
		return ErrUnknownWebhookAction
	}

	hooks, err := ws.getHooksForAction(actionType)
	if err != nil {
		return err
	}

	eg := &errgroup.Group{}
	for i := range hooks {
		hook := hooks[i]
		eg.Go(func() error { return ws.doRequest(hook, topic, message) })
	}
	return eg.Wait()
}

func (ws *webhookService) TopicsByCode() map[int]ports.Topic {
	topics := make(map[int]ports.Topic)
	for action := range actionToString {
		topics[int(action)] = action
	}
	return topics
}

func (ws *webhookService) TopicsByLabel() map[string]ports.Topic {
	topics := make(map[string]ports.Topic)
	for label, action := range stringToAction {
		topics[label] = action
	}
	return topics
}

func (ws *webhookService) Close() error {
	return ws.store.close()
}

func (ws *webhookService) getHooksForAction(
	actionType WebhookAction,
) ([]Webhook, error) {
	if actionType == AllActions {
		return ws.store.getByActions(AllActions)
	}
	return ws.store.getByActions(actionType, AllActions)
}

func (ws *webhookService) doRequest(hook Webhook, topic, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if hook.IsSecured() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
				IssuedAt: time.Now().Unix(),
				Subject:  topic,
			})
			tokenString, err := token.SignedString([]byte(hook.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		ctx, cancel := context.WithTimeout(context.Background(), ws.requestTimeout)
		defer cancel()

		status, resp, err := ws.httpClient.post(ctx, hook.Endpoint, payload, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("webhook %s replied with %d: %s", hook.ID, status, resp)
		}
		return nil, nil
	})
	if err != nil {
		log.WithError(err).Debugf("failed to notify webhook %s", hook.ID)
	}
	return err
}
