package fundraiserv1

import (
	"fmt"
	"strings"
)

type ActionType int32

const (
	ActionType_ACTION_TYPE_DONATION_RECORDED ActionType = 0
	ActionType_ACTION_TYPE_FUNDS_DEPOSITED   ActionType = 1
	ActionType_ACTION_TYPE_ALL               ActionType = 2
)

var (
	ActionType_name = map[ActionType]string{
		ActionType_ACTION_TYPE_DONATION_RECORDED: "DONATION_RECORDED",
		ActionType_ACTION_TYPE_FUNDS_DEPOSITED:   "FUNDS_DEPOSITED",
		ActionType_ACTION_TYPE_ALL:               "ALL",
	}
	ActionType_value = map[string]ActionType{
		"DONATION_RECORDED": ActionType_ACTION_TYPE_DONATION_RECORDED,
		"FUNDS_DEPOSITED":   ActionType_ACTION_TYPE_FUNDS_DEPOSITED,
		"ALL":               ActionType_ACTION_TYPE_ALL,
	}
)

func (x ActionType) String() string {
	if name, ok := ActionType_name[x]; ok {
		return name
	}
	return fmt.Sprintf("ActionType(%d)", int32(x))
}

// ParseActionType parses the case-insensitive name of an action type.
func ParseActionType(str string) (ActionType, error) {
	action, ok := ActionType_value[strings.ToUpper(str)]
	if !ok {
		return 0, fmt.Errorf("unknown action type %s", str)
	}
	return action, nil
}

type AddWebhookRequest struct {
	Action   ActionType `json:"action"`
	Endpoint string     `json:"endpoint"`
	// Optional secret used to sign the bearer token sent to the endpoint.
	Secret string `json:"secret,omitempty"`
}

func (x *AddWebhookRequest) GetAction() ActionType {
	if x != nil {
		return x.Action
	}
	return ActionType_ACTION_TYPE_DONATION_RECORDED
}

func (x *AddWebhookRequest) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *AddWebhookRequest) GetSecret() string {
	if x != nil {
		return x.Secret
	}
	return ""
}

type AddWebhookResponse struct {
	Id string `json:"id"`
}

func (x *AddWebhookResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RemoveWebhookRequest struct {
	Id string `json:"id"`
}

func (x *RemoveWebhookRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RemoveWebhookResponse struct{}

type ListWebhooksRequest struct {
	Action ActionType `json:"action"`
}

func (x *ListWebhooksRequest) GetAction() ActionType {
	if x != nil {
		return x.Action
	}
	return ActionType_ACTION_TYPE_DONATION_RECORDED
}

type WebhookInfo struct {
	Id        string     `json:"id"`
	Action    ActionType `json:"action"`
	Endpoint  string     `json:"endpoint"`
	IsSecured bool       `json:"is_secured"`
}

type ListWebhooksResponse struct {
	WebhookInfo []*WebhookInfo `json:"webhook_info"`
}

func (x *ListWebhooksResponse) GetWebhookInfo() []*WebhookInfo {
	if x != nil {
		return x.WebhookInfo
	}
	return nil
}
