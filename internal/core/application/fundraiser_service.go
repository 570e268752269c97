package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
)

// FundraiserService accepts donations into the fundraising purse and keeps
// track of how many times every account has donated.
type FundraiserService interface {
	Init(ctx context.Context) error
	IsInitialized(ctx context.Context) (bool, error)
	Donate(
		ctx context.Context, donatingAccountKey domain.Key,
	) (DepositCapability, error)
	GetDonationCount(
		ctx context.Context, donatingAccountKey domain.Key,
	) (uint64, error)
	GetFundsRaised(ctx context.Context) (decimal.Decimal, error)
	Deposit(
		ctx context.Context, capability DepositCapability, amount decimal.Decimal,
	) error
	ListDonations(ctx context.Context, page domain.Page) ([]Donation, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type fundraiserService struct {
	repoManager ports.RepoManager
	purseSvc    PurseService
	ledgerSvc   LedgerService
	pubsubSvc   PubSubService
}

func NewFundraiserService(
	repoManager ports.RepoManager, pubsubSvc PubSubService,
) FundraiserService {
	return newFundraiserService(repoManager, pubsubSvc)
}

func newFundraiserService(
	repoManager ports.RepoManager, pubsubSvc PubSubService,
) *fundraiserService {
	return &fundraiserService{
		repoManager: repoManager,
		purseSvc:    NewPurseService(repoManager.PurseRepository()),
		ledgerSvc:   NewLedgerService(repoManager.LedgerRepository()),
		pubsubSvc:   pubsubSvc,
	}
}

func (s *fundraiserService) Init(ctx context.Context) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			keys := s.repoManager.NamedKeyRepository()

			for _, name := range []string{domain.FundraisingPurseKey, domain.LedgerKey} {
				uref, err := keys.GetKey(ctx, name)
				if err != nil {
					return nil, err
				}
				if uref != nil {
					return nil, domain.ErrAlreadyInitialized
				}
			}

			purse, err := s.purseSvc.CreatePurse(ctx)
			if err != nil {
				return nil, err
			}
			if err := addNamedKey(
				ctx, keys, domain.FundraisingPurseKey, purse.uref,
			); err != nil {
				return nil, err
			}

			ledger, err := s.ledgerSvc.CreateLedger(ctx, domain.LedgerKey)
			if err != nil {
				return nil, err
			}
			if err := addNamedKey(ctx, keys, domain.LedgerKey, ledger); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
	if err != nil {
		return err
	}

	log.Info("fundraiser initialized")
	return nil
}

func (s *fundraiserService) IsInitialized(ctx context.Context) (bool, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			keys := s.repoManager.NamedKeyRepository()
			for _, name := range []string{domain.FundraisingPurseKey, domain.LedgerKey} {
				uref, err := keys.GetKey(ctx, name)
				if err != nil {
					return nil, err
				}
				if uref == nil {
					return false, nil
				}
			}
			return true, nil
		},
	)
	if err != nil {
		return false, err
	}
	return res.(bool), nil
}

func (s *fundraiserService) Donate(
	ctx context.Context, donatingAccountKey domain.Key,
) (DepositCapability, error) {
	account, ok := donatingAccountKey.AsAccount()
	if !ok {
		return DepositCapability{}, domain.ErrInvalidKeyVariant
	}

	type donateResult struct {
		capability DepositCapability
		count      uint64
	}

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			purse, err := s.getPurseHandle(ctx)
			if err != nil {
				return nil, err
			}
			ledger, err := s.getNamedURef(
				ctx, domain.LedgerKey, domain.ErrMissingLedgerSeedURef,
			)
			if err != nil {
				return nil, err
			}

			count, err := s.ledgerSvc.Increment(ctx, ledger, account.String())
			if err != nil {
				return nil, err
			}

			return donateResult{
				capability: s.purseSvc.IssueDepositCapability(purse),
				count:      count,
			}, nil
		},
	)
	if err != nil {
		return DepositCapability{}, err
	}

	result := res.(donateResult)
	log.Debugf("recorded donation #%d for %s", result.count, account)

	go s.publishDonation(account.String(), result.count)

	return result.capability, nil
}

func (s *fundraiserService) GetDonationCount(
	ctx context.Context, donatingAccountKey domain.Key,
) (uint64, error) {
	account, ok := donatingAccountKey.AsAccount()
	if !ok {
		return 0, domain.ErrInvalidKeyVariant
	}

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			ledger, err := s.getNamedURef(
				ctx, domain.LedgerKey, domain.ErrMissingLedgerSeedURef,
			)
			if err != nil {
				return nil, err
			}
			return s.ledgerSvc.GetCount(ctx, ledger, account.String())
		},
	)
	if err != nil {
		return 0, err
	}
	return res.(uint64), nil
}

func (s *fundraiserService) GetFundsRaised(
	ctx context.Context,
) (decimal.Decimal, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.getFundsRaised(ctx)
		},
	)
	if err != nil {
		return decimal.Zero, err
	}
	return res.(decimal.Decimal), nil
}

func (s *fundraiserService) Deposit(
	ctx context.Context, capability DepositCapability, amount decimal.Decimal,
) error {
	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.purseSvc.Deposit(ctx, capability, amount)
		},
	); err != nil {
		return err
	}

	go s.publishDeposit(amount)

	return nil
}

func (s *fundraiserService) ListDonations(
	ctx context.Context, page domain.Page,
) ([]Donation, error) {
	if page != nil {
		if err := domain.ValidatePage(page); err != nil {
			return nil, err
		}
	}

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			ledger, err := s.getNamedURef(
				ctx, domain.LedgerKey, domain.ErrMissingLedgerSeedURef,
			)
			if err != nil {
				return nil, err
			}
			return s.ledgerSvc.ListEntries(ctx, ledger, page)
		},
	)
	if err != nil {
		return nil, err
	}

	entries := res.([]domain.LedgerEntry)
	donations := make([]Donation, 0, len(entries))
	for _, e := range entries {
		donations = append(donations, Donation{e.Key, e.Count})
	}
	return donations, nil
}

func (s *fundraiserService) GetStats(ctx context.Context) (*Stats, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			ledger, err := s.getNamedURef(
				ctx, domain.LedgerKey, domain.ErrMissingLedgerSeedURef,
			)
			if err != nil {
				return nil, err
			}
			entries, err := s.ledgerSvc.ListEntries(ctx, ledger, nil)
			if err != nil {
				return nil, err
			}
			fundsRaised, err := s.getFundsRaised(ctx)
			if err != nil {
				return nil, err
			}

			stats := &Stats{
				Donors:      len(entries),
				FundsRaised: fundsRaised,
			}
			for _, e := range entries {
				stats.TotalDonations += e.Count
			}
			return stats, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*Stats), nil
}

func (s *fundraiserService) getFundsRaised(
	ctx context.Context,
) (decimal.Decimal, error) {
	purse, err := s.getPurseHandle(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return s.purseSvc.GetBalance(ctx, purse)
}

func (s *fundraiserService) getPurseHandle(
	ctx context.Context,
) (PurseHandle, error) {
	uref, err := s.getNamedURef(
		ctx, domain.FundraisingPurseKey, domain.ErrMissingFundRaisingPurseURef,
	)
	if err != nil {
		return PurseHandle{}, err
	}
	return PurseHandle{uref}, nil
}

func (s *fundraiserService) getNamedURef(
	ctx context.Context, name string, errMissing error,
) (domain.URef, error) {
	uref, err := s.repoManager.NamedKeyRepository().GetKey(ctx, name)
	if err != nil {
		return domain.URef{}, err
	}
	if uref == nil {
		return domain.URef{}, errMissing
	}
	return *uref, nil
}

// addNamedKey binds the uref to the name unless a concurrent initialization
// got there first.
func addNamedKey(
	ctx context.Context, keys domain.NamedKeyRepository,
	name string, uref domain.URef,
) error {
	if err := keys.AddKey(ctx, name, uref); err != nil {
		if errors.Is(err, domain.ErrNamedKeyAlreadyExists) {
			return domain.ErrAlreadyInitialized
		}
		return err
	}
	return nil
}

func (s *fundraiserService) publishDonation(account string, count uint64) {
	if s.pubsubSvc == nil {
		return
	}
	if err := s.pubsubSvc.PublishDonationRecorded(DonationRecordedMessage{
		Account:       account,
		DonationCount: count,
		Timestamp:     time.Now().Unix(),
	}); err != nil {
		log.WithError(err).Warn("an error occured while publishing donation")
	}
}

func (s *fundraiserService) publishDeposit(amount decimal.Decimal) {
	if s.pubsubSvc == nil {
		return
	}
	if err := s.pubsubSvc.PublishFundsDeposited(FundsDepositedMessage{
		Amount:    amount.String(),
		Timestamp: time.Now().Unix(),
	}); err != nil {
		log.WithError(err).Warn("an error occured while publishing deposit")
	}
}
