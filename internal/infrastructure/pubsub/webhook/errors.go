package webhookpubsub

import (
	"fmt"

	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
)

var (
	// ErrUnknownWebhookAction specifies that the given string does not represent
	// any known action.
	ErrUnknownWebhookAction = fmt.Errorf(
		"%w: action is unknown", ports.ErrInvalidSubscription,
	)
	// ErrInvalidEndpoint is returned if the webhook endpoint is not a valid
	// request URI.
	ErrInvalidEndpoint = fmt.Errorf(
		"%w: webhook endpoint must be a valid URI", ports.ErrInvalidSubscription,
	)
	// ErrWebhookNotFound is returned when attempting to remove an unknown
	// webhook.
	ErrWebhookNotFound = fmt.Errorf("webhook %w", ports.ErrSubscriptionNotFound)
)
