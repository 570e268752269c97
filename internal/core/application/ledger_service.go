package application

import (
	"context"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// LedgerService manages durable per-key monotonic counters.
type LedgerService interface {
	CreateLedger(ctx context.Context, name string) (domain.URef, error)
	GetCount(ctx context.Context, ledger domain.URef, key string) (uint64, error)
	Increment(ctx context.Context, ledger domain.URef, key string) (uint64, error)
	ListEntries(
		ctx context.Context, ledger domain.URef, page domain.Page,
	) ([]domain.LedgerEntry, error)
}

type ledgerService struct {
	repository domain.LedgerRepository
}

func NewLedgerService(repository domain.LedgerRepository) LedgerService {
	return newLedgerService(repository)
}

func newLedgerService(repository domain.LedgerRepository) *ledgerService {
	return &ledgerService{repository}
}

func (s *ledgerService) CreateLedger(
	ctx context.Context, name string,
) (domain.URef, error) {
	uref := newURef()
	if err := s.repository.AddLedger(ctx, domain.NewLedger(uref, name)); err != nil {
		return domain.URef{}, err
	}
	return uref, nil
}

func (s *ledgerService) GetCount(
	ctx context.Context, ledger domain.URef, key string,
) (uint64, error) {
	if !ledger.IsReadable() {
		return 0, domain.ErrForbidden
	}
	if _, err := s.repository.GetLedger(ctx, ledger.AddrString()); err != nil {
		return 0, err
	}

	entry, err := s.repository.GetEntry(ctx, ledger.AddrString(), key)
	if err != nil {
		return 0, err
	}
	return countOf(entry), nil
}

func (s *ledgerService) Increment(
	ctx context.Context, ledger domain.URef, key string,
) (uint64, error) {
	if !ledger.IsReadable() || !ledger.IsWriteable() {
		return 0, domain.ErrForbidden
	}
	if _, err := s.repository.GetLedger(ctx, ledger.AddrString()); err != nil {
		return 0, err
	}

	var count uint64
	if err := s.repository.UpdateEntry(
		ctx, ledger.AddrString(), key,
		func(e *domain.LedgerEntry) (*domain.LedgerEntry, error) {
			if e == nil {
				e = domain.NewLedgerEntry(ledger.AddrString(), key)
			}
			if err := e.Increment(); err != nil {
				return nil, err
			}
			count = e.Count
			return e, nil
		},
	); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *ledgerService) ListEntries(
	ctx context.Context, ledger domain.URef, page domain.Page,
) ([]domain.LedgerEntry, error) {
	if !ledger.IsReadable() {
		return nil, domain.ErrForbidden
	}
	if _, err := s.repository.GetLedger(ctx, ledger.AddrString()); err != nil {
		return nil, err
	}
	return s.repository.GetEntries(ctx, ledger.AddrString(), page)
}

// countOf applies the default-zero semantics of absent entries.
func countOf(entry *domain.LedgerEntry) uint64 {
	if entry == nil {
		return 0
	}
	return entry.Count
}
