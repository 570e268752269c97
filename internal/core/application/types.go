package application

import (
	"github.com/shopspring/decimal"
)

// Donation is the pairing of a donor identity with its current count.
type Donation struct {
	Account string
	Count   uint64
}

// Stats summarizes the state of the fundraiser.
type Stats struct {
	Donors         int
	TotalDonations uint64
	FundsRaised    decimal.Decimal
}

// Webhook is the info needed to subscribe an endpoint to some topic.
type Webhook struct {
	ActionType int
	Endpoint   string
	Secret     string
}

type WebhookInfo struct {
	Id         string
	ActionType int
	Endpoint   string
	IsSecured  bool
}

// DonationRecordedMessage is the payload published for every donation.
type DonationRecordedMessage struct {
	Account       string `json:"account"`
	DonationCount uint64 `json:"donation_count"`
	Timestamp     int64  `json:"timestamp"`
}

// FundsDepositedMessage is the payload published for every deposit made
// through a capability.
type FundsDepositedMessage struct {
	Amount    string `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}
