package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
)

func TestLedgerService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	ledgerSvc := application.NewLedgerService(repoManager.LedgerRepository())

	ledger, err := ledgerSvc.CreateLedger(ctx, domain.LedgerKey)
	require.NoError(t, err)

	otherLedger, err := ledgerSvc.CreateLedger(ctx, domain.LedgerKey)
	require.NoError(t, err)
	require.NotEqual(t, ledger.Addr(), otherLedger.Addr())

	key := randomAccountKey().String()

	count, err := ledgerSvc.GetCount(ctx, ledger, key)
	require.NoError(t, err)
	require.Zero(t, count)

	entries, err := ledgerSvc.ListEntries(ctx, ledger, nil)
	require.NoError(t, err)
	require.Empty(t, entries)

	for i := 1; i <= 3; i++ {
		count, err := ledgerSvc.Increment(ctx, ledger, key)
		require.NoError(t, err)
		require.Equal(t, uint64(i), count)
	}

	count, err = ledgerSvc.GetCount(ctx, ledger, key)
	require.NoError(t, err)
	require.Equal(t, uint64(3), count)

	count, err = ledgerSvc.GetCount(ctx, otherLedger, key)
	require.NoError(t, err)
	require.Zero(t, count)

	entries, err = ledgerSvc.ListEntries(ctx, ledger, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, key, entries[0].Key)
	require.Equal(t, uint64(3), entries[0].Count)

	t.Run("invalid", func(t *testing.T) {
		unknownLedger := domain.NewURef(randomAddr(), domain.AccessReadAddWrite)

		tests := []struct {
			name          string
			action        func() error
			expectedError error
		}{
			{
				name: "get_count_from_unknown_ledger",
				action: func() error {
					_, err := ledgerSvc.GetCount(ctx, unknownLedger, key)
					return err
				},
				expectedError: domain.ErrLedgerNotFound,
			},
			{
				name: "increment_unknown_ledger",
				action: func() error {
					_, err := ledgerSvc.Increment(ctx, unknownLedger, key)
					return err
				},
				expectedError: domain.ErrResourceUnavailable,
			},
			{
				name: "increment_with_read_only_uref",
				action: func() error {
					_, err := ledgerSvc.Increment(ctx, ledger.IntoRead(), key)
					return err
				},
				expectedError: domain.ErrForbidden,
			},
			{
				name: "get_count_with_add_only_uref",
				action: func() error {
					_, err := ledgerSvc.GetCount(ctx, ledger.IntoAdd(), key)
					return err
				},
				expectedError: domain.ErrForbidden,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				err := tt.action()
				require.ErrorIs(t, err, tt.expectedError)
			})
		}

		count, err := ledgerSvc.GetCount(ctx, ledger, key)
		require.NoError(t, err)
		require.Equal(t, uint64(3), count)
	})
}
