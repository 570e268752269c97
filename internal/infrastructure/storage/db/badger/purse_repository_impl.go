package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type purseRepositoryImpl struct {
	store *badgerhold.Store
}

// NewPurseRepositoryImpl initialize a badger implementation of the
// domain.PurseRepository
func NewPurseRepositoryImpl(store *badgerhold.Store) domain.PurseRepository {
	return purseRepositoryImpl{store}
}

func (r purseRepositoryImpl) AddPurse(
	ctx context.Context, purse *domain.Purse,
) error {
	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		if err := r.store.TxInsert(tx, purse.Addr, *purse); err != nil {
			if err == badgerhold.ErrKeyExists {
				return ErrPurseAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r purseRepositoryImpl) GetPurse(
	ctx context.Context, addr string,
) (*domain.Purse, error) {
	var purse *domain.Purse
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) (err error) {
		purse, err = r.getPurse(tx, addr)
		return
	})
	if err != nil {
		return nil, err
	}
	return purse, nil
}

func (r purseRepositoryImpl) UpdatePurse(
	ctx context.Context,
	addr string, updateFn func(p *domain.Purse) (*domain.Purse, error),
) error {
	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		purse, err := r.getPurse(tx, addr)
		if err != nil {
			return err
		}

		updatedPurse, err := updateFn(purse)
		if err != nil {
			return err
		}

		return r.store.TxUpdate(tx, addr, *updatedPurse)
	})
}

func (r purseRepositoryImpl) getPurse(
	tx *badger.Txn, addr string,
) (*domain.Purse, error) {
	var purse domain.Purse
	if err := r.store.TxGet(tx, addr, &purse); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPurseNotFound
		}
		return nil, err
	}
	return &purse, nil
}
