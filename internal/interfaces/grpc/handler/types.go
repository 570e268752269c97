package grpchandler

import (
	fundraiserv1 "github.com/tdex-network/fundraiser-daemon/api-spec/fundraiser/v1"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
)

type donationList []application.Donation

func (l donationList) toProto() []*fundraiserv1.Donation {
	list := make([]*fundraiserv1.Donation, 0, len(l))
	for _, d := range l {
		list = append(list, &fundraiserv1.Donation{
			Account: d.Account,
			Count:   d.Count,
		})
	}
	return list
}

type webhooksInfo []application.WebhookInfo

func (i webhooksInfo) toProto() []*fundraiserv1.WebhookInfo {
	list := make([]*fundraiserv1.WebhookInfo, 0, len(i))
	for _, info := range i {
		list = append(list, &fundraiserv1.WebhookInfo{
			Id:        info.Id,
			Action:    fundraiserv1.ActionType(info.ActionType),
			Endpoint:  info.Endpoint,
			IsSecured: info.IsSecured,
		})
	}
	return list
}
