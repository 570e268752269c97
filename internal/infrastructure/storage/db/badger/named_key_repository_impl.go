package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type namedKeyRepositoryImpl struct {
	store *badgerhold.Store
}

// NewNamedKeyRepositoryImpl initialize a badger implementation of the
// domain.NamedKeyRepository
func NewNamedKeyRepositoryImpl(
	store *badgerhold.Store,
) domain.NamedKeyRepository {
	return namedKeyRepositoryImpl{store}
}

func (r namedKeyRepositoryImpl) AddKey(
	ctx context.Context, name string, uref domain.URef,
) error {
	key := domain.NamedKey{Name: name, URef: uref.String()}
	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		if err := r.store.TxInsert(tx, name, key); err != nil {
			if err == badgerhold.ErrKeyExists {
				return domain.ErrNamedKeyAlreadyExists
			}
			return err
		}
		return nil
	})
}

func (r namedKeyRepositoryImpl) PutKey(
	ctx context.Context, name string, uref domain.URef,
) error {
	key := domain.NamedKey{Name: name, URef: uref.String()}
	return withTx(ctx, r.store, false, func(tx *badger.Txn) error {
		return r.store.TxUpsert(tx, name, key)
	})
}

func (r namedKeyRepositoryImpl) GetKey(
	ctx context.Context, name string,
) (*domain.URef, error) {
	var key domain.NamedKey
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) error {
		return r.store.TxGet(tx, name, &key)
	})
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	uref, err := domain.ParseURef(key.URef)
	if err != nil {
		return nil, err
	}
	return &uref, nil
}

func (r namedKeyRepositoryImpl) GetAllKeys(
	ctx context.Context,
) ([]domain.NamedKey, error) {
	var keys []domain.NamedKey
	err := withTx(ctx, r.store, true, func(tx *badger.Txn) error {
		return r.store.TxFind(tx, &keys, nil)
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
