package application

// Topics to be published
const (
	DonationRecorded = iota
	FundsDeposited
	AllTopics
)
