package domain

import "context"

// LedgerRepository is the abstraction for any kind of database intended to
// persist Ledgers and their entries.
type LedgerRepository interface {
	// AddLedger adds a new empty ledger to the repository.
	AddLedger(ctx context.Context, ledger *Ledger) error
	// GetLedger returns the ledger with the given address, or
	// ErrLedgerNotFound.
	GetLedger(ctx context.Context, addr string) (*Ledger, error)
	// GetEntry returns the entry for the given key, nil if the key has never
	// been recorded.
	GetEntry(ctx context.Context, ledgerAddr, key string) (*LedgerEntry, error)
	// GetEntries returns the entries of a ledger sorted by key. A nil page
	// returns all of them.
	GetEntries(
		ctx context.Context, ledgerAddr string, page Page,
	) ([]LedgerEntry, error)
	// UpdateEntry reads the entry for the given key (nil if absent), and
	// stores the one returned by the closure function. Concurrent updates of
	// the same entry within transactions must never be lost.
	UpdateEntry(
		ctx context.Context,
		ledgerAddr, key string,
		updateFn func(e *LedgerEntry) (*LedgerEntry, error),
	) error
}
