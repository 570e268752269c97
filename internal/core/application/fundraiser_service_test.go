package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/application"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
)

func TestFundraiserService(t *testing.T) {
	for _, f := range repoManagerFactories {
		f := f

		t.Run(f.name, func(t *testing.T) {
			t.Run("donation_scenario", func(t *testing.T) {
				testDonationScenario(t, f.factory(t))
			})
			t.Run("before_init", func(t *testing.T) {
				testFundraiserBeforeInit(t, f.factory(t))
			})
			t.Run("invalid_key_variant", func(t *testing.T) {
				testInvalidKeyVariant(t, f.factory(t))
			})
			t.Run("concurrent_donations", func(t *testing.T) {
				testConcurrentDonations(t, f.factory(t))
			})
			t.Run("concurrent_init", func(t *testing.T) {
				testConcurrentInit(t, f.factory(t))
			})
		})
	}
}

func testDonationScenario(t *testing.T, repoManager ports.RepoManager) {
	ctx := context.Background()
	svc := application.NewFundraiserService(repoManager, nil)

	initialized, err := svc.IsInitialized(ctx)
	require.NoError(t, err)
	require.False(t, initialized)

	err = svc.Init(ctx)
	require.NoError(t, err)

	initialized, err = svc.IsInitialized(ctx)
	require.NoError(t, err)
	require.True(t, initialized)

	donorA := randomAccountKey()
	donorB := randomAccountKey()

	capability, err := svc.Donate(ctx, donorA)
	require.NoError(t, err)
	capabilityURef, err := domain.ParseURef(capability.String())
	require.NoError(t, err)
	require.Equal(t, domain.AccessAdd, capabilityURef.Rights())

	count, err := svc.GetDonationCount(ctx, donorA)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	err = svc.Deposit(ctx, capability, decimal.NewFromInt(100))
	require.NoError(t, err)

	otherCapability, err := svc.Donate(ctx, donorA)
	require.NoError(t, err)
	require.Equal(t, capability, otherCapability)

	count, err = svc.GetDonationCount(ctx, donorA)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	funds, err := svc.GetFundsRaised(ctx)
	require.NoError(t, err)
	require.Equal(t, "100", funds.String())

	count, err = svc.GetDonationCount(ctx, donorB)
	require.NoError(t, err)
	require.Zero(t, count)

	// Capabilities parsed from their string form can be used to deposit too.
	parsedCapability, err := application.ParseDepositCapability(
		capability.String(),
	)
	require.NoError(t, err)
	err = svc.Deposit(ctx, parsedCapability, decimal.NewFromInt(50))
	require.NoError(t, err)

	err = svc.Deposit(ctx, parsedCapability, decimal.NewFromInt(-50))
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	funds, err = svc.GetFundsRaised(ctx)
	require.NoError(t, err)
	require.Equal(t, "150", funds.String())

	// A capability whose rights are raised in its string form is still an
	// add-only one.
	escalated := domain.NewURef(capabilityURef.Addr(), domain.AccessReadAddWrite)
	escalatedCapability, err := application.ParseDepositCapability(
		escalated.String(),
	)
	require.NoError(t, err)
	require.Equal(t, capability, escalatedCapability)

	funds, err = svc.GetFundsRaised(ctx)
	require.NoError(t, err)
	require.Equal(t, "150", funds.String())

	_, err = svc.Donate(ctx, donorB)
	require.NoError(t, err)

	donations, err := svc.ListDonations(ctx, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, []application.Donation{
		{Account: donorA.String(), Count: 2},
		{Account: donorB.String(), Count: 1},
	}, donations)

	donations, err = svc.ListDonations(ctx, domain.NewPage(1, 1))
	require.NoError(t, err)
	require.Len(t, donations, 1)

	donations, err = svc.ListDonations(ctx, domain.NewPage(3, 1<<62))
	require.ErrorIs(t, err, domain.ErrInvalidPage)
	require.Nil(t, donations)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Donors)
	require.Equal(t, uint64(3), stats.TotalDonations)
	require.Equal(t, "150", stats.FundsRaised.String())

	// Initializing again must neither fail silently nor reset any state.
	err = svc.Init(ctx)
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	count, err = svc.GetDonationCount(ctx, donorA)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)

	funds, err = svc.GetFundsRaised(ctx)
	require.NoError(t, err)
	require.Equal(t, "150", funds.String())
}

func testFundraiserBeforeInit(t *testing.T, repoManager ports.RepoManager) {
	ctx := context.Background()
	svc := application.NewFundraiserService(repoManager, nil)
	capability := application.ParseDepositCapability

	tests := []struct {
		name          string
		action        func() error
		expectedError error
	}{
		{
			name: "donate",
			action: func() error {
				_, err := svc.Donate(ctx, randomAccountKey())
				return err
			},
			expectedError: domain.ErrMissingFundRaisingPurseURef,
		},
		{
			name: "get_donation_count",
			action: func() error {
				_, err := svc.GetDonationCount(ctx, randomAccountKey())
				return err
			},
			expectedError: domain.ErrMissingLedgerSeedURef,
		},
		{
			name: "get_funds_raised",
			action: func() error {
				_, err := svc.GetFundsRaised(ctx)
				return err
			},
			expectedError: domain.ErrMissingFundRaisingPurseURef,
		},
		{
			name: "list_donations",
			action: func() error {
				_, err := svc.ListDonations(ctx, nil)
				return err
			},
			expectedError: domain.ErrMissingResource,
		},
		{
			name: "get_stats",
			action: func() error {
				_, err := svc.GetStats(ctx)
				return err
			},
			expectedError: domain.ErrMissingResource,
		},
		{
			name: "deposit",
			action: func() error {
				c, err := capability(
					domain.NewURef(randomAddr(), domain.AccessAdd).String(),
				)
				if err != nil {
					return err
				}
				return svc.Deposit(ctx, c, decimal.NewFromInt(10))
			},
			expectedError: domain.ErrPurseNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action()
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func testInvalidKeyVariant(t *testing.T, repoManager ports.RepoManager) {
	ctx := context.Background()
	svc := application.NewFundraiserService(repoManager, nil)
	err := svc.Init(ctx)
	require.NoError(t, err)

	donor := randomAccountKey()
	_, err = svc.Donate(ctx, donor)
	require.NoError(t, err)

	tests := []struct {
		name string
		key  domain.Key
	}{
		{"hash_key", randomHashKey()},
		{"uref_key", randomURefKey()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			capability, err := svc.Donate(ctx, tt.key)
			require.ErrorIs(t, err, domain.ErrInvalidKeyVariant)
			require.ErrorIs(t, err, domain.ErrInvalidIdentity)
			require.Empty(t, capability)

			_, err = svc.GetDonationCount(ctx, tt.key)
			require.ErrorIs(t, err, domain.ErrInvalidKeyVariant)
		})
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Donors)
	require.Equal(t, uint64(1), stats.TotalDonations)
}

// testConcurrentDonations makes sure that concurrent donations from the same
// account are all counted.
func testConcurrentDonations(t *testing.T, repoManager ports.RepoManager) {
	ctx := context.Background()
	svc := application.NewFundraiserService(repoManager, nil)
	err := svc.Init(ctx)
	require.NoError(t, err)

	donor := randomAccountKey()
	numOfDonations := 25

	wg := &sync.WaitGroup{}
	chErr := make(chan error, numOfDonations)
	for i := 0; i < numOfDonations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Donate(ctx, donor)
			chErr <- err
		}()
	}
	wg.Wait()
	close(chErr)

	for err := range chErr {
		require.NoError(t, err)
	}

	count, err := svc.GetDonationCount(ctx, donor)
	require.NoError(t, err)
	require.Equal(t, uint64(numOfDonations), count)
}

// testConcurrentInit makes sure that only one of many concurrent
// initializations succeeds and that the named keys it bound are kept.
func testConcurrentInit(t *testing.T, repoManager ports.RepoManager) {
	ctx := context.Background()
	svc := application.NewFundraiserService(repoManager, nil)
	numOfInits := 10

	wg := &sync.WaitGroup{}
	chErr := make(chan error, numOfInits)
	for i := 0; i < numOfInits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
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

	keys, err := repoManager.NamedKeyRepository().GetAllKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	capability, err := svc.Donate(ctx, randomAccountKey())
	require.NoError(t, err)
	err = svc.Deposit(ctx, capability, decimal.NewFromInt(10))
	require.NoError(t, err)

	err = svc.Init(ctx)
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)

	keysAfter, err := repoManager.NamedKeyRepository().GetAllKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, keys, keysAfter)

	funds, err := svc.GetFundsRaised(ctx)
	require.NoError(t, err)
	require.Equal(t, "10", funds.String())
}

func TestFundraiserServicePublishing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chPublished := make(chan struct{}, 10)
	notify := func(mock.Arguments) { chPublished <- struct{}{} }

	pubsubSvc := &mockPubSubService{}
	pubsubSvc.On("PublishDonationRecorded", mock.Anything).Return(nil).Run(notify)
	pubsubSvc.On("PublishFundsDeposited", mock.Anything).Return(nil).Run(notify)

	svc := application.NewFundraiserService(inmemory.NewRepoManager(), pubsubSvc)
	err := svc.Init(ctx)
	require.NoError(t, err)

	donor := randomAccountKey()
	capability, err := svc.Donate(ctx, donor)
	require.NoError(t, err)

	err = svc.Deposit(ctx, capability, decimal.NewFromInt(42))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-chPublished:
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for published messages")
		}
	}

	pubsubSvc.AssertCalled(t, "PublishDonationRecorded", mock.MatchedBy(
		func(msg application.DonationRecordedMessage) bool {
			return msg.Account == donor.String() && msg.DonationCount == 1
		},
	))
	pubsubSvc.AssertCalled(t, "PublishFundsDeposited", mock.MatchedBy(
		func(msg application.FundsDepositedMessage) bool {
			return msg.Amount == "42"
		},
	))

	// Failing calls must not publish anything.
	_, err = svc.Donate(ctx, randomHashKey())
	require.Error(t, err)
	err = svc.Deposit(ctx, capability, decimal.Zero)
	require.Error(t, err)

	select {
	case <-chPublished:
		t.Fatal("unexpected message published")
	case <-time.After(100 * time.Millisecond):
	}
}
