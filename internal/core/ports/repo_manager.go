package ports

import (
	"context"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// RepoManager interface defines the methods for purses, ledgers and named
// keys, and lets to run a set of read/write operations over them as a single
// all-or-nothing unit of work.
type RepoManager interface {
	PurseRepository() domain.PurseRepository
	LedgerRepository() domain.LedgerRepository
	NamedKeyRepository() domain.NamedKeyRepository

	// RunTransaction runs the handler within a storage transaction. Any
	// change made by the handler is discarded if it returns an error.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	Close()
}
