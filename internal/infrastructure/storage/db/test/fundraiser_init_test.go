package db_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
)

// TestConcurrentFundraiserInit runs many initializations of the fundraiser
// at once against every storage implementation. Exactly one of them must win
// and the named keys it bound must never be replaced by the losers.
func TestConcurrentFundraiserInit(t *testing.T) {
	managers := createRepoManagers(t)

	for i := range managers {
		manager := managers[i]

		t.Run(manager.Name, func(t *testing.T) {
			ctx := context.Background()
			numOfInits := 10

			wg := &sync.WaitGroup{}
			chErr := make(chan error, numOfInits)
			for i := 0; i < numOfInits; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					svc := application.NewFundraiserService(manager.Manager, nil)
					chErr <- svc.Init(ctx)
				}()
			}
			wg.Wait()
			close(chErr)

			succeeded := 0
			for err := range chErr {
				if err == nil {
					succeeded++
					continue
				}
				require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
			}
			require.Equal(t, 1, succeeded)

			keys := manager.Manager.NamedKeyRepository()
			purse, err := keys.GetKey(ctx, domain.FundraisingPurseKey)
			require.NoError(t, err)
			require.NotNil(t, purse)
			ledger, err := keys.GetKey(ctx, domain.LedgerKey)
			require.NoError(t, err)
			require.NotNil(t, ledger)

			_, err = manager.Manager.PurseRepository().GetPurse(
				ctx, purse.AddrString(),
			)
			require.NoError(t, err)
			_, err = manager.Manager.LedgerRepository().GetLedger(
				ctx, ledger.AddrString(),
			)
			require.NoError(t, err)

			svc := application.NewFundraiserService(manager.Manager, nil)
			err = svc.Init(ctx)
			require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

			purseAfter, err := keys.GetKey(ctx, domain.FundraisingPurseKey)
			require.NoError(t, err)
			require.Equal(t, *purse, *purseAfter)
		})
	}
}
