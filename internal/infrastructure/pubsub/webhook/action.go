package webhookpubsub

// webhook action types
const (
	DonationRecorded WebhookAction = iota
	FundsDeposited
	AllActions
)

var (
	actionToString = map[WebhookAction]string{
		DonationRecorded: "DONATION_RECORDED",
		FundsDeposited:   "FUNDS_DEPOSITED",
		AllActions:       "*",
	}
	stringToAction = map[string]WebhookAction{
		"DONATION_RECORDED": DonationRecorded,
		"FUNDS_DEPOSITED":   FundsDeposited,
		"*":                 AllActions,
	}
)

type WebhookAction int

func WebhookActionFromString(actionStr string) (WebhookAction, bool) {
	action, ok := stringToAction[actionStr]
	return action, ok
}

func (wa WebhookAction) String() string {
	actionStr, ok := actionToString[wa]
	if !ok {
		actionStr = "UNKNOWN"
	}
	return actionStr
}

func (wa WebhookAction) Code() int {
	return int(wa)
}

func (wa WebhookAction) Label() string {
	return wa.String()
}
