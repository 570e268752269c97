package inmemory

import (
	"context"
	"sync"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
)

type txKey struct{}

type inmemoryStore struct {
	locker    *sync.RWMutex
	purses    map[string]domain.Purse
	ledgers   map[string]domain.Ledger
	entries   map[string]domain.LedgerEntry
	namedKeys map[string]domain.NamedKey
}

func newInmemoryStore() *inmemoryStore {
	return &inmemoryStore{
		locker:    &sync.RWMutex{},
		purses:    map[string]domain.Purse{},
		ledgers:   map[string]domain.Ledger{},
		entries:   map[string]domain.LedgerEntry{},
		namedKeys: map[string]domain.NamedKey{},
	}
}

type snapshot struct {
	purses    map[string]domain.Purse
	ledgers   map[string]domain.Ledger
	entries   map[string]domain.LedgerEntry
	namedKeys map[string]domain.NamedKey
}

func (s *inmemoryStore) snapshot() snapshot {
	s.locker.RLock()
	defer s.locker.RUnlock()

	snap := snapshot{
		purses:    make(map[string]domain.Purse, len(s.purses)),
		ledgers:   make(map[string]domain.Ledger, len(s.ledgers)),
		entries:   make(map[string]domain.LedgerEntry, len(s.entries)),
		namedKeys: make(map[string]domain.NamedKey, len(s.namedKeys)),
	}
	for k, v := range s.purses {
		snap.purses[k] = v
	}
	for k, v := range s.ledgers {
		snap.ledgers[k] = v
	}
	for k, v := range s.entries {
		snap.entries[k] = v
	}
	for k, v := range s.namedKeys {
		snap.namedKeys[k] = v
	}
	return snap
}

func (s *inmemoryStore) restore(snap snapshot) {
	s.locker.Lock()
	defer s.locker.Unlock()

	s.purses = snap.purses
	s.ledgers = snap.ledgers
	s.entries = snap.entries
	s.namedKeys = snap.namedKeys
}

// RepoManager keeps all data in memory. Transactions are serialized and
// rolled back from a snapshot of the store in case of failure.
type RepoManager struct {
	store    *inmemoryStore
	txLocker *sync.RWMutex

	purseRepository    domain.PurseRepository
	ledgerRepository   domain.LedgerRepository
	namedKeyRepository domain.NamedKeyRepository
}

func NewRepoManager() ports.RepoManager {
	store := newInmemoryStore()

	return &RepoManager{
		store:              store,
		txLocker:           &sync.RWMutex{},
		purseRepository:    NewPurseRepositoryImpl(store),
		ledgerRepository:   NewLedgerRepositoryImpl(store),
		namedKeyRepository: NewNamedKeyRepositoryImpl(store),
	}
}

func (d *RepoManager) PurseRepository() domain.PurseRepository {
	return d.purseRepository
}

func (d *RepoManager) LedgerRepository() domain.LedgerRepository {
	return d.ledgerRepository
}

func (d *RepoManager) NamedKeyRepository() domain.NamedKeyRepository {
	return d.namedKeyRepository
}

func (d *RepoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	if ctx.Value(txKey{}) != nil {
		return handler(ctx)
	}

	if readOnly {
		d.txLocker.RLock()
		defer d.txLocker.RUnlock()

		return handler(context.WithValue(ctx, txKey{}, true))
	}

	d.txLocker.Lock()
	defer d.txLocker.Unlock()

	snap := d.store.snapshot()
	res, err := handler(context.WithValue(ctx, txKey{}, true))
	if err != nil {
		d.store.restore(snap)
		return nil, err
	}
	return res, nil
}

func (d *RepoManager) Close() {}
