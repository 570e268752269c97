package inmemory

import (
	"context"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// PurseRepositoryImpl represents an in memory storage
type PurseRepositoryImpl struct {
	store *inmemoryStore
}

// NewPurseRepositoryImpl returns a new empty PurseRepositoryImpl
func NewPurseRepositoryImpl(store *inmemoryStore) domain.PurseRepository {
	return &PurseRepositoryImpl{store}
}

func (r *PurseRepositoryImpl) AddPurse(
	_ context.Context, purse *domain.Purse,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.purses[purse.Addr]; ok {
		return ErrPurseAlreadyExists
	}
	r.store.purses[purse.Addr] = *purse
	return nil
}

func (r *PurseRepositoryImpl) GetPurse(
	_ context.Context, addr string,
) (*domain.Purse, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	purse, ok := r.store.purses[addr]
	if !ok {
		return nil, domain.ErrPurseNotFound
	}
	return &purse, nil
}

func (r *PurseRepositoryImpl) UpdatePurse(
	_ context.Context,
	addr string, updateFn func(p *domain.Purse) (*domain.Purse, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	purse, ok := r.store.purses[addr]
	if !ok {
		return domain.ErrPurseNotFound
	}

	updatedPurse, err := updateFn(&purse)
	if err != nil {
		return err
	}

	r.store.purses[addr] = *updatedPurse
	return nil
}
