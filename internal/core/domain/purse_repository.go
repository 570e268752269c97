package domain

import "context"

// PurseRepository is the abstraction for any kind of database intended to
// persist Purses.
type PurseRepository interface {
	// AddPurse adds a new purse to the repository.
	AddPurse(ctx context.Context, purse *Purse) error
	// GetPurse returns the purse with the given address, or ErrPurseNotFound.
	GetPurse(ctx context.Context, addr string) (*Purse, error)
	// UpdatePurse updates the state of a purse. The closure function let's to
	// commit multiple changes to a certain purse in a transactional way.
	UpdatePurse(
		ctx context.Context,
		addr string, updateFn func(p *Purse) (*Purse, error),
	) error
}
