package db_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

func TestPurseRepositoryImplementations(t *testing.T) {
	managers := createRepoManagers(t)

	for i := range managers {
		manager := managers[i]

		t.Run(manager.Name, func(t *testing.T) {
			t.Run("add_and_get_purse", func(t *testing.T) {
				testAddAndGetPurse(t, manager)
			})
			t.Run("update_purse", func(t *testing.T) {
				testUpdatePurse(t, manager)
			})
		})
	}
}

func testAddAndGetPurse(t *testing.T, manager repoManager) {
	repo := manager.Manager.PurseRepository()
	ctx := context.Background()
	purse := domain.NewPurse(randomURef(domain.AccessReadAddWrite))

	p, err := repo.GetPurse(ctx, purse.Addr)
	require.ErrorIs(t, err, domain.ErrPurseNotFound)
	require.Nil(t, p)

	err = repo.AddPurse(ctx, purse)
	require.NoError(t, err)

	err = repo.AddPurse(ctx, purse)
	require.Error(t, err)

	p, err = repo.GetPurse(ctx, purse.Addr)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, purse.Addr, p.Addr)
	require.True(t, p.Balance.IsZero())
}

func testUpdatePurse(t *testing.T, manager repoManager) {
	repo := manager.Manager.PurseRepository()
	ctx := context.Background()
	purse := domain.NewPurse(randomURef(domain.AccessReadAddWrite))

	err := repo.UpdatePurse(
		ctx, purse.Addr, func(p *domain.Purse) (*domain.Purse, error) {
			return p, nil
		},
	)
	require.ErrorIs(t, err, domain.ErrPurseNotFound)

	err = repo.AddPurse(ctx, purse)
	require.NoError(t, err)

	err = repo.UpdatePurse(
		ctx, purse.Addr, func(p *domain.Purse) (*domain.Purse, error) {
			if err := p.Deposit(decimal.NewFromInt(1000)); err != nil {
				return nil, err
			}
			return p, nil
		},
	)
	require.NoError(t, err)

	err = repo.UpdatePurse(
		ctx, purse.Addr, func(p *domain.Purse) (*domain.Purse, error) {
			if err := p.Withdraw(decimal.NewFromInt(2000)); err != nil {
				return nil, err
			}
			return p, nil
		},
	)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	p, err := repo.GetPurse(ctx, purse.Addr)
	require.NoError(t, err)
	require.Equal(t, "1000", p.Balance.String())
}
