package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
)

// **** PubSubService ****

type mockPubSubService struct {
	mock.Mock
}

func (m *mockPubSubService) AddWebhook(
	ctx context.Context, hook application.Webhook,
) (string, error) {
	args := m.Called(ctx, hook)
	return args.String(0), args.Error(1)
}

func (m *mockPubSubService) RemoveWebhook(
	ctx context.Context, hookID string,
) error {
	args := m.Called(ctx, hookID)
	return args.Error(0)
}

func (m *mockPubSubService) ListWebhooks(
	ctx context.Context, actionType int,
) ([]application.WebhookInfo, error) {
	args := m.Called(ctx, actionType)

	var res []application.WebhookInfo
	if a := args.Get(0); a != nil {
		res = a.([]application.WebhookInfo)
	}
	return res, args.Error(1)
}

func (m *mockPubSubService) PublishDonationRecorded(
	msg application.DonationRecordedMessage,
) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *mockPubSubService) PublishFundsDeposited(
	msg application.FundsDepositedMessage,
) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *mockPubSubService) Close() {
	m.Called()
}

// **** SecurePubSub ****

type mockSecurePubSub struct {
	mock.Mock
}

func (m *mockSecurePubSub) Subscribe(
	topic, endpoint, secret string,
) (string, error) {
	args := m.Called(topic, endpoint, secret)
	return args.String(0), args.Error(1)
}

func (m *mockSecurePubSub) Unsubscribe(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockSecurePubSub) ListSubscriptionsForTopic(
	topic string,
) []ports.Subscription {
	args := m.Called(topic)

	var res []ports.Subscription
	if a := args.Get(0); a != nil {
		res = a.([]ports.Subscription)
	}
	return res
}

func (m *mockSecurePubSub) Publish(topic string, message string) error {
	args := m.Called(topic, message)
	return args.Error(0)
}

func (m *mockSecurePubSub) TopicsByCode() map[int]ports.Topic {
	return map[int]ports.Topic{
		application.DonationRecorded: mockTopic{application.DonationRecorded, "DONATION_RECORDED"},
		application.FundsDeposited:   mockTopic{application.FundsDeposited, "FUNDS_DEPOSITED"},
		application.AllTopics:        mockTopic{application.AllTopics, "*"},
	}
}

func (m *mockSecurePubSub) TopicsByLabel() map[string]ports.Topic {
	topics := make(map[string]ports.Topic)
	for _, topic := range m.TopicsByCode() {
		topics[topic.Label()] = topic
	}
	return topics
}

func (m *mockSecurePubSub) Close() error {
	args := m.Called()
	return args.Error(0)
}

type mockTopic struct {
	code  int
	label string
}

func (t mockTopic) Code() int {
	return t.code
}

func (t mockTopic) Label() string {
	return t.label
}

type mockSubscription struct {
	id       string
	topic    ports.Topic
	endpoint string
	secret   string
}

func (s mockSubscription) Id() string {
	return s.id
}

func (s mockSubscription) Topic() ports.Topic {
	return s.topic
}

func (s mockSubscription) NotifyAt() string {
	return s.endpoint
}

func (s mockSubscription) IsSecured() bool {
	return len(s.secret) > 0
}
