package application

import (
	"context"
	"encoding/json"

	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
)

// PubSubService lets to register webhooks and notifies them about donations
// and deposits.
type PubSubService interface {
	AddWebhook(ctx context.Context, hook Webhook) (string, error)
	RemoveWebhook(ctx context.Context, hookID string) error
	ListWebhooks(ctx context.Context, actionType int) ([]WebhookInfo, error)
	PublishDonationRecorded(msg DonationRecordedMessage) error
	PublishFundsDeposited(msg FundsDepositedMessage) error
	Close()
}

type pubsubService struct {
	pubsubSvc ports.SecurePubSub
}

func NewPubSubService(pubsubSvc ports.SecurePubSub) PubSubService {
	return &pubsubService{pubsubSvc}
}

func (s *pubsubService) AddWebhook(
	_ context.Context, hook Webhook,
) (string, error) {
	if s.pubsubSvc == nil {
		return "", ErrPubSubNotInitialized
	}
	topic, err := s.topicLabel(hook.ActionType)
	if err != nil {
		return "", err
	}
	return s.pubsubSvc.Subscribe(topic, hook.Endpoint, hook.Secret)
}

func (s *pubsubService) RemoveWebhook(_ context.Context, hookID string) error {
	if s.pubsubSvc == nil {
		return ErrPubSubNotInitialized
	}
	return s.pubsubSvc.Unsubscribe(hookID)
}

func (s *pubsubService) ListWebhooks(
	_ context.Context, actionType int,
) ([]WebhookInfo, error) {
	if s.pubsubSvc == nil {
		return nil, ErrPubSubNotInitialized
	}
	topic, err := s.topicLabel(actionType)
	if err != nil {
		return nil, err
	}

	subs := s.pubsubSvc.ListSubscriptionsForTopic(topic)
	hooks := make([]WebhookInfo, 0, len(subs))
	for _, sub := range subs {
		hooks = append(hooks, WebhookInfo{
			Id:         sub.Id(),
			ActionType: sub.Topic().Code(),
			Endpoint:   sub.NotifyAt(),
			IsSecured:  sub.IsSecured(),
		})
	}
	return hooks, nil
}

func (s *pubsubService) PublishDonationRecorded(
	msg DonationRecordedMessage,
) error {
	return s.publish(DonationRecorded, msg)
}

func (s *pubsubService) PublishFundsDeposited(msg FundsDepositedMessage) error {
	return s.publish(FundsDeposited, msg)
}

func (s *pubsubService) Close() {
	if s.pubsubSvc != nil {
		s.pubsubSvc.Close()
	}
}

func (s *pubsubService) publish(topicCode int, msg interface{}) error {
	if s.pubsubSvc == nil {
		return nil
	}
	topic, err := s.topicLabel(topicCode)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.pubsubSvc.Publish(topic, string(buf))
}

func (s *pubsubService) topicLabel(code int) (string, error) {
	topic, ok := s.pubsubSvc.TopicsByCode()[code]
	if !ok {
		return "", ErrUnknownTopic
	}
	return topic.Label(), nil
}
