package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type ledgerRepositoryImpl struct {
	store *badgerhold.Store
}

// NewLedgerRepositoryImpl initialize a badger implementation of the
// domain.LedgerRepository
func NewLedgerRepositoryImpl(store *badgerhold.Store) domain.LedgerRepository {
	return ledgerRepositoryImpl{store}
}

func (r ledgerRepositoryImpl) AddLedger(
	ctx context.Context, ledger *domain.Ledger,
) error {
	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		if err := r.store.TxInsert(tx, ledger.Addr, *ledger); err != nil {
			if err == badgerhold.ErrKeyExists {
				return ErrLedgerAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r ledgerRepositoryImpl) GetLedger(
	ctx context.Context, addr string,
) (*domain.Ledger, error) {
	var ledger domain.Ledger
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) error {
		return r.store.TxGet(tx, addr, &ledger)
	})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrLedgerNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

func (r ledgerRepositoryImpl) GetEntry(
	ctx context.Context, ledgerAddr, key string,
) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) (err error) {
		entry, err = r.getEntry(tx, domain.LedgerEntryID(ledgerAddr, key))
		return
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r ledgerRepositoryImpl) GetEntries(
	ctx context.Context, ledgerAddr string, page domain.Page,
) ([]domain.LedgerEntry, error) {
	query := badgerhold.Where("LedgerAddr").Eq(ledgerAddr).SortBy("Key")
	if page != nil {
		offset, limit, err := domain.PageOffset(page)
		if err != nil {
			return nil, err
		}
		query.Skip(int(offset)).Limit(int(limit))
	}

	var entries []domain.LedgerEntry
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) error {
		return r.store.TxFind(tx, &entries, query)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r ledgerRepositoryImpl) UpdateEntry(
	ctx context.Context,
	ledgerAddr, key string,
	updateFn func(e *domain.LedgerEntry) (*domain.LedgerEntry, error),
) error {
	id := domain.LedgerEntryID(ledgerAddr, key)

	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		entry, err := r.getEntry(tx, id)
		if err != nil {
			return err
		}

		updatedEntry, err := updateFn(entry)
		if err != nil {
			return err
		}

		return r.store.TxUpsert(tx, id, *updatedEntry)
	})
}

func (r ledgerRepositoryImpl) getEntry(
	tx *badger.Txn, id string,
) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	if err := r.store.TxGet(tx, id, &entry); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
