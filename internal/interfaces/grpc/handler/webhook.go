package grpchandler

import (
	"context"

	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type webhookHandler struct {
	fundraiserv1.UnimplementedWebhookServiceServer

	pubsubSvc application.PubSubService
}

// NewWebhookHandler is a constructor function returning a
// WebhookServiceServer.
func NewWebhookHandler(
	pubsubSvc application.PubSubService,
) fundraiserv1.WebhookServiceServer {
	return newWebhookHandler(pubsubSvc)
}

func newWebhookHandler(pubsubSvc application.PubSubService) *webhookHandler {
	return &webhookHandler{pubsubSvc: pubsubSvc}
}

func (h *webhookHandler) AddWebhook(
	ctx context.Context, req *fundraiserv1.AddWebhookRequest,
) (*fundraiserv1.AddWebhookResponse, error) {
	return h.addWebhook(ctx, req)
}

func (h *webhookHandler) RemoveWebhook(
	ctx context.Context, req *fundraiserv1.RemoveWebhookRequest,
) (*fundraiserv1.RemoveWebhookResponse, error) {
	return h.removeWebhook(ctx, req)
}

func (h *webhookHandler) ListWebhooks(
	ctx context.Context, req *fundraiserv1.ListWebhooksRequest,
) (*fundraiserv1.ListWebhooksResponse, error) {
	return h.listWebhooks(ctx, req)
}

func (h *webhookHandler) addWebhook(
	ctx context.Context, req *fundraiserv1.AddWebhookRequest,
) (*fundraiserv1.AddWebhookResponse, error) {
	webhook, err := parseWebhook(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	hookID, err := h.pubsubSvc.AddWebhook(ctx, webhook)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.AddWebhookResponse{Id: hookID}, nil
}

func (h *webhookHandler) removeWebhook(
	ctx context.Context, req *fundraiserv1.RemoveWebhookRequest,
) (*fundraiserv1.RemoveWebhookResponse, error) {
	id, err := parseWebhookID(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := h.pubsubSvc.RemoveWebhook(ctx, id); err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.RemoveWebhookResponse{}, nil
}

func (h *webhookHandler) listWebhooks(
	ctx context.Context, req *fundraiserv1.ListWebhooksRequest,
) (*fundraiserv1.ListWebhooksResponse, error) {
	action, err := parseWebhookAction(req.GetAction())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	hooks, err := h.pubsubSvc.ListWebhooks(ctx, action)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &fundraiserv1.ListWebhooksResponse{
		WebhookInfo: webhooksInfo(hooks).toProto(),
	}, nil
}
