package application_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
)

func TestPurseService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repoManager := inmemory.NewRepoManager()
	purseSvc := application.NewPurseService(repoManager.PurseRepository())

	purse, err := purseSvc.CreatePurse(ctx)
	require.NoError(t, err)

	otherPurse, err := purseSvc.CreatePurse(ctx)
	require.NoError(t, err)

	capability := purseSvc.IssueDepositCapability(purse)
	uref, err := domain.ParseURef(capability.String())
	require.NoError(t, err)
	require.Equal(t, domain.AccessAdd, uref.Rights())
	require.NotEqual(t, [domain.AddrLength]byte{}, uref.Addr())
	require.NotEqual(
		t, capability.String(),
		purseSvc.IssueDepositCapability(otherPurse).String(),
	)

	err = purseSvc.Deposit(ctx, capability, decimal.NewFromInt(100))
	require.NoError(t, err)

	balance, err := purseSvc.GetBalance(ctx, purse)
	require.NoError(t, err)
	require.Equal(t, "100", balance.String())

	balance, err = purseSvc.GetBalance(ctx, otherPurse)
	require.NoError(t, err)
	require.True(t, balance.IsZero())

	err = purseSvc.Withdraw(ctx, purse, decimal.NewFromInt(40))
	require.NoError(t, err)

	balance, err = purseSvc.GetBalance(ctx, purse)
	require.NoError(t, err)
	require.Equal(t, "60", balance.String())

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name          string
			action        func() error
			expectedError error
		}{
			{
				name: "read_with_forged_handle",
				action: func() error {
					_, err := purseSvc.GetBalance(ctx, application.PurseHandle{})
					return err
				},
				expectedError: domain.ErrForbidden,
			},
			{
				name: "withdraw_with_forged_handle",
				action: func() error {
					return purseSvc.Withdraw(
						ctx, application.PurseHandle{}, decimal.NewFromInt(1),
					)
				},
				expectedError: domain.ErrForbidden,
			},
			{
				name: "withdraw_too_much",
				action: func() error {
					return purseSvc.Withdraw(ctx, purse, decimal.NewFromInt(61))
				},
				expectedError: domain.ErrInsufficientFunds,
			},
			{
				name: "deposit_zero",
				action: func() error {
					return purseSvc.Deposit(ctx, capability, decimal.Zero)
				},
				expectedError: domain.ErrInvalidAmount,
			},
			{
				name: "deposit_fractional",
				action: func() error {
					return purseSvc.Deposit(
						ctx, capability, decimal.RequireFromString("1.5"),
					)
				},
				expectedError: domain.ErrInvalidAmount,
			},
			{
				name: "deposit_to_unknown_purse",
				action: func() error {
					unknown, err := application.ParseDepositCapability(
						domain.NewURef(randomAddr(), domain.AccessAdd).String(),
					)
					if err != nil {
						return err
					}
					return purseSvc.Deposit(ctx, unknown, decimal.NewFromInt(1))
				},
				expectedError: domain.ErrResourceUnavailable,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				err := tt.action()
				require.ErrorIs(t, err, tt.expectedError)
			})
		}

		balance, err := purseSvc.GetBalance(ctx, purse)
		require.NoError(t, err)
		require.Equal(t, "60", balance.String())
	})

	// Raising the rights in the string form of a capability never grants
	// more than add access to the purse.
	t.Run("escalated_capability", func(t *testing.T) {
		escalated := domain.NewURef(uref.Addr(), domain.AccessReadAddWrite)

		parsed, err := application.ParseDepositCapability(escalated.String())
		require.NoError(t, err)
		require.Equal(t, capability, parsed)
		require.Equal(t, capability.String(), parsed.String())

		err = purseSvc.Deposit(ctx, parsed, decimal.NewFromInt(1))
		require.NoError(t, err)

		balance, err := purseSvc.GetBalance(ctx, purse)
		require.NoError(t, err)
		require.Equal(t, "61", balance.String())
	})
}

func TestParseDepositCapability(t *testing.T) {
	t.Parallel()

	addr := randomAddr()

	t.Run("valid", func(t *testing.T) {
		for _, rights := range []domain.AccessRights{
			domain.AccessAdd, domain.AccessReadAdd, domain.AccessReadAddWrite,
		} {
			uref := domain.NewURef(addr, rights)

			capability, err := application.ParseDepositCapability(uref.String())
			require.NoError(t, err)
			require.Equal(
				t, domain.NewURef(addr, domain.AccessAdd).String(), capability.String(),
			)
			require.Equal(t, uref.IntoAdd().String(), capability.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		tests := []struct {
			name          string
			capability    string
			expectedError error
		}{
			{
				name:          "read_only",
				capability:    domain.NewURef(addr, domain.AccessRead).String(),
				expectedError: domain.ErrForbidden,
			},
			{
				name:          "no_rights",
				capability:    domain.NewURef(addr, domain.AccessNone).String(),
				expectedError: domain.ErrForbidden,
			},
			{
				name:          "malformed",
				capability:    "uref-abc-004",
				expectedError: domain.ErrMalformedURef,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				_, err := application.ParseDepositCapability(tt.capability)
				require.ErrorIs(t, err, tt.expectedError)
			})
		}
	})
}
