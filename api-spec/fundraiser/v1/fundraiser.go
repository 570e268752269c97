package fundraiserv1

type InitRequest struct{}

type InitResponse struct{}

type DonateRequest struct {
	// The account-hash key of the donor, ie. account-hash-<hex>.
	DonatingAccountKey string `json:"donating_account_key"`
}

func (x *DonateRequest) GetDonatingAccountKey() string {
	if x != nil {
		return x.DonatingAccountKey
	}
	return ""
}

type DonateResponse struct {
	// The add-only uref of the fundraising purse.
	Purse string `json:"purse"`
}

func (x *DonateResponse) GetPurse() string {
	if x != nil {
		return x.Purse
	}
	return ""
}

type GetDonationCountRequest struct {
	DonatingAccountKey string `json:"donating_account_key"`
}

func (x *GetDonationCountRequest) GetDonatingAccountKey() string {
	if x != nil {
		return x.DonatingAccountKey
	}
	return ""
}

type GetDonationCountResponse struct {
	DonationCount uint64 `json:"donation_count"`
}

func (x *GetDonationCountResponse) GetDonationCount() uint64 {
	if x != nil {
		return x.DonationCount
	}
	return 0
}

type GetFundsRaisedRequest struct{}

type GetFundsRaisedResponse struct {
	FundsRaised string `json:"funds_raised"`
}

func (x *GetFundsRaisedResponse) GetFundsRaised() string {
	if x != nil {
		return x.FundsRaised
	}
	return ""
}

type DepositRequest struct {
	// The add-only uref returned by Donate.
	Purse string `json:"purse"`
	// Positive integer amount.
	Amount string `json:"amount"`
}

func (x *DepositRequest) GetPurse() string {
	if x != nil {
		return x.Purse
	}
	return ""
}

func (x *DepositRequest) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

type DepositResponse struct{}

type Page struct {
	PageNumber int64 `json:"page_number"`
	PageSize   int64 `json:"page_size"`
}

func (x *Page) GetPageNumber() int64 {
	if x != nil {
		return x.PageNumber
	}
	return 0
}

func (x *Page) GetPageSize() int64 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListDonationsRequest struct {
	Page *Page `json:"page,omitempty"`
}

func (x *ListDonationsRequest) GetPage() *Page {
	if x != nil {
		return x.Page
	}
	return nil
}

type Donation struct {
	Account string `json:"account"`
	Count   uint64 `json:"count"`
}

type ListDonationsResponse struct {
	Donations []*Donation `json:"donations"`
}

func (x *ListDonationsResponse) GetDonations() []*Donation {
	if x != nil {
		return x.Donations
	}
	return nil
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	Donors         uint64 `json:"donors"`
	TotalDonations uint64 `json:"total_donations"`
	FundsRaised    string `json:"funds_raised"`
}
