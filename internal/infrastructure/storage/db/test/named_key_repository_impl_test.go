package db_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

func TestNamedKeyRepositoryImplementations(t *testing.T) {
	managers := createRepoManagers(t)

	for i := range managers {
		manager := managers[i]

		t.Run(manager.Name, func(t *testing.T) {
			t.Run("put_and_get_keys", func(t *testing.T) {
				testPutAndGetKeys(t, manager)
			})
			t.Run("add_key", func(t *testing.T) {
				testAddKey(t, manager)
			})
			t.Run("concurrent_add_key", func(t *testing.T) {
				testConcurrentAddKey(t, manager)
			})
			t.Run("transaction_rollback", func(t *testing.T) {
				testTransactionRollback(t, manager)
			})
		})
	}
}

func testPutAndGetKeys(t *testing.T, manager repoManager) {
	repo := manager.Manager.NamedKeyRepository()
	ctx := context.Background()
	name := "key-" + randomAccountKey().String()

	uref, err := repo.GetKey(ctx, name)
	require.NoError(t, err)
	require.Nil(t, uref)

	first := randomURef(domain.AccessReadAddWrite)
	err = repo.PutKey(ctx, name, first)
	require.NoError(t, err)

	uref, err = repo.GetKey(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, uref)
	require.Equal(t, first, *uref)

	second := randomURef(domain.AccessRead)
	err = repo.PutKey(ctx, name, second)
	require.NoError(t, err)

	uref, err = repo.GetKey(ctx, name)
	require.NoError(t, err)
	require.Equal(t, second, *uref)

	keys, err := repo.GetAllKeys(ctx)
	require.NoError(t, err)
	require.Contains(t, keys, domain.NamedKey{Name: name, URef: second.String()})
}

func testAddKey(t *testing.T, manager repoManager) {
	repo := manager.Manager.NamedKeyRepository()
	ctx := context.Background()
	name := "key-" + randomAccountKey().String()

	first := randomURef(domain.AccessReadAddWrite)
	err := repo.AddKey(ctx, name, first)
	require.NoError(t, err)

	err = repo.AddKey(ctx, name, randomURef(domain.AccessReadAddWrite))
	require.ErrorIs(t, err, domain.ErrNamedKeyAlreadyExists)

	uref, err := repo.GetKey(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, uref)
	require.Equal(t, first, *uref)
}

// testConcurrentAddKey makes sure that only one of many concurrent
// transactions adding the same named key wins, and that its uref is never
// overwritten by the others.
func testConcurrentAddKey(t *testing.T, manager repoManager) {
	repo := manager.Manager.NamedKeyRepository()
	ctx := context.Background()
	name := "key-" + randomAccountKey().String()
	numOfWriters := 10

	urefs := make([]domain.URef, 0, numOfWriters)
	for i := 0; i < numOfWriters; i++ {
		urefs = append(urefs, randomURef(domain.AccessReadAddWrite))
	}

	type result struct {
		uref domain.URef
		err  error
	}

	wg := &sync.WaitGroup{}
	chRes := make(chan result, numOfWriters)
	for i := range urefs {
		uref := urefs[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Manager.RunTransaction(
				ctx, false, func(ctx context.Context) (interface{}, error) {
					return nil, repo.AddKey(ctx, name, uref)
				},
			)
			chRes <- result{uref, err}
		}()
	}
	wg.Wait()
	close(chRes)

	winners := make([]domain.URef, 0, 1)
	for res := range chRes {
		if res.err == nil {
			winners = append(winners, res.uref)
			continue
		}
		require.ErrorIs(t, res.err, domain.ErrNamedKeyAlreadyExists)
	}
	require.Len(t, winners, 1)

	uref, err := repo.GetKey(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, uref)
	require.Equal(t, winners[0], *uref)
}

// testTransactionRollback makes sure that no change made by a failing
// transaction is persisted.
func testTransactionRollback(t *testing.T, manager repoManager) {
	ctx := context.Background()
	purse := domain.NewPurse(randomURef(domain.AccessReadAddWrite))
	name := "purse-" + purse.Addr
	errAbort := errors.New("abort")

	err := manager.Manager.PurseRepository().AddPurse(ctx, purse)
	require.NoError(t, err)

	_, err = manager.Manager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := manager.Manager.PurseRepository().UpdatePurse(
				ctx, purse.Addr, func(p *domain.Purse) (*domain.Purse, error) {
					if err := p.Deposit(decimal.NewFromInt(10)); err != nil {
						return nil, err
					}
					return p, nil
				},
			); err != nil {
				return nil, err
			}
			if err := manager.Manager.NamedKeyRepository().PutKey(
				ctx, name, randomURef(domain.AccessRead),
			); err != nil {
				return nil, err
			}
			return nil, errAbort
		},
	)
	require.ErrorIs(t, err, errAbort)

	p, err := manager.Manager.PurseRepository().GetPurse(ctx, purse.Addr)
	require.NoError(t, err)
	require.True(t, p.Balance.IsZero())

	uref, err := manager.Manager.NamedKeyRepository().GetKey(ctx, name)
	require.NoError(t, err)
	require.Nil(t, uref)
}
