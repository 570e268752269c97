package grpchandler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// parseAccountKey only makes sure the key is well formed. The check on its
// variant is up to the application service.
func parseAccountKey(str string) (domain.Key, error) {
	if len(str) <= 0 {
		return domain.Key{}, errors.New("missing donating account key")
	}
	return domain.ParseKey(str)
}

func parseAmount(str string) (decimal.Decimal, error) {
	if len(str) <= 0 {
		return decimal.Zero, errors.New("missing amount")
	}
	amount, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", err)
	}
	if err := domain.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func parseWebhook(req *fundraiserv1.AddWebhookRequest) (application.Webhook, error) {
	action, err := parseWebhookAction(req.GetAction())
	if err != nil {
		return application.Webhook{}, err
	}
	if len(req.GetEndpoint()) <= 0 {
		return application.Webhook{}, errors.New("missing webhook endpoint")
	}
	return application.Webhook{
		ActionType: action,
		Endpoint:   req.GetEndpoint(),
		Secret:     req.GetSecret(),
	}, nil
}

func parseWebhookAction(action fundraiserv1.ActionType) (int, error) {
	switch action {
	case fundraiserv1.ActionType_ACTION_TYPE_DONATION_RECORDED:
		return application.DonationRecorded, nil
	case fundraiserv1.ActionType_ACTION_TYPE_FUNDS_DEPOSITED:
		return application.FundsDeposited, nil
	case fundraiserv1.ActionType_ACTION_TYPE_ALL:
		return application.AllTopics, nil
	default:
		return -1, fmt.Errorf("unknown webhook action %s", action)
	}
}

func parseWebhookID(id string) (string, error) {
	if len(id) <= 0 {
		return "", errors.New("missing webhook id")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("invalid webhook id")
	}
	return id, nil
}

// toStatusError maps the errors returned by the application services to
// gRPC status errors.
func toStatusError(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, domain.ErrInvalidIdentity),
		errors.Is(err, domain.ErrMalformedURef),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPage),
		errors.Is(err, ports.ErrInvalidSubscription),
		errors.Is(err, application.ErrUnknownTopic):
		code = codes.InvalidArgument
	case errors.Is(err, domain.ErrMissingResource),
		errors.Is(err, domain.ErrInsufficientFunds):
		code = codes.FailedPrecondition
	case errors.Is(err, domain.ErrResourceUnavailable),
		errors.Is(err, ports.ErrSubscriptionNotFound):
		code = codes.NotFound
	case errors.Is(err, domain.ErrForbidden):
		code = codes.PermissionDenied
	case errors.Is(err, domain.ErrAlreadyInitialized):
		code = codes.AlreadyExists
	case errors.Is(err, domain.ErrCounterOverflow):
		code = codes.OutOfRange
	case errors.Is(err, application.ErrPubSubNotInitialized):
		code = codes.Unavailable
	default:
		code = codes.Internal
	}
	return status.Error(code, err.Error())
}
