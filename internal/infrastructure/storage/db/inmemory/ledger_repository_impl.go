package inmemory

import (
	"context"
	"sort"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// LedgerRepositoryImpl represents an in memory storage
type LedgerRepositoryImpl struct {
	store *inmemoryStore
}

// NewLedgerRepositoryImpl returns a new empty LedgerRepositoryImpl
func NewLedgerRepositoryImpl(store *inmemoryStore) domain.LedgerRepository {
	return &LedgerRepositoryImpl{store}
}

func (r *LedgerRepositoryImpl) AddLedger(
	_ context.Context, ledger *domain.Ledger,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.ledgers[ledger.Addr]; ok {
		return ErrLedgerAlreadyExists
	}
	r.store.ledgers[ledger.Addr] = *ledger
	return nil
}

func (r *LedgerRepositoryImpl) GetLedger(
	_ context.Context, addr string,
) (*domain.Ledger, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	ledger, ok := r.store.ledgers[addr]
	if !ok {
		return nil, domain.ErrLedgerNotFound
	}
	return &ledger, nil
}

func (r *LedgerRepositoryImpl) GetEntry(
	_ context.Context, ledgerAddr, key string,
) (*domain.LedgerEntry, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	entry, ok := r.store.entries[domain.LedgerEntryID(ledgerAddr, key)]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (r *LedgerRepositoryImpl) GetEntries(
	_ context.Context, ledgerAddr string, page domain.Page,
) ([]domain.LedgerEntry, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	entries := make([]domain.LedgerEntry, 0)
	for _, e := range r.store.entries {
		if e.LedgerAddr == ledgerAddr {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	if page == nil {
		return entries, nil
	}

	offset, limit, err := domain.PageOffset(page)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= int64(len(entries)) {
		return []domain.LedgerEntry{}, nil
	}
	startIndex := int(offset)
	endIndex := len(entries)
	if limit < int64(endIndex-startIndex) {
		endIndex = startIndex + int(limit)
	}
	return entries[startIndex:endIndex], nil
}

func (r *LedgerRepositoryImpl) UpdateEntry(
	_ context.Context,
	ledgerAddr, key string,
	updateFn func(e *domain.LedgerEntry) (*domain.LedgerEntry, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	id := domain.LedgerEntryID(ledgerAddr, key)

	var entry *domain.LedgerEntry
	if e, ok := r.store.entries[id]; ok {
		entry = &e
	}

	updatedEntry, err := updateFn(entry)
	if err != nil {
		return err
	}

	r.store.entries[id] = *updatedEntry
	return nil
}
