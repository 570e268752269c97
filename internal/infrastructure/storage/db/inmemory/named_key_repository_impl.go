package inmemory

import (
	"context"
	"sort"

	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// NamedKeyRepositoryImpl represents an in memory storage
type NamedKeyRepositoryImpl struct {
	store *inmemoryStore
}

// NewNamedKeyRepositoryImpl returns a new empty NamedKeyRepositoryImpl
func NewNamedKeyRepositoryImpl(store *inmemoryStore) domain.NamedKeyRepository {
	return &NamedKeyRepositoryImpl{store}
}

func (r *NamedKeyRepositoryImpl) AddKey(
	_ context.Context, name string, uref domain.URef,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.namedKeys[name]; ok {
		return domain.ErrNamedKeyAlreadyExists
	}
	r.store.namedKeys[name] = domain.NamedKey{Name: name, URef: uref.String()}
	return nil
}

func (r *NamedKeyRepositoryImpl) PutKey(
	_ context.Context, name string, uref domain.URef,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.namedKeys[name] = domain.NamedKey{Name: name, URef: uref.String()}
	return nil
}

func (r *NamedKeyRepositoryImpl) GetKey(
	_ context.Context, name string,
) (*domain.URef, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	key, ok := r.store.namedKeys[name]
	if !ok {
		return nil, nil
	}

	uref, err := domain.ParseURef(key.URef)
	if err != nil {
		return nil, err
	}
	return &uref, nil
}

func (r *NamedKeyRepositoryImpl) GetAllKeys(
	_ context.Context,
) ([]domain.NamedKey, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	keys := make([]domain.NamedKey, 0, len(r.store.namedKeys))
	for _, k := range r.store.namedKeys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Name < keys[j].Name })
	return keys, nil
}
