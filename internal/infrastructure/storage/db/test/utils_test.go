package db_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	dbbadger "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
	"github.com/thanhpk/randstr"
)

const pgTestAddrEnv = "FUNDRAISER_PG_TEST_ADDR"

type repoManager struct {
	Name    string
	Manager ports.RepoManager
}

// createRepoManagers returns a fresh repo manager for every implementation.
// The postgres one is included only if a test database is configured.
func createRepoManagers(t *testing.T) []repoManager {
	badgerRepoManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)
	t.Cleanup(badgerRepoManager.Close)

	managers := []repoManager{
		{
			Name:    "badger",
			Manager: badgerRepoManager,
		},
		{
			Name:    "inmemory",
			Manager: inmemory.NewRepoManager(),
		},
	}

	if addr := os.Getenv(pgTestAddrEnv); len(addr) > 0 {
		pgRepoManager, err := setupPgDb(addr)
		require.NoError(t, err)
		t.Cleanup(func() {
			require.NoError(t, tearDownPgDb(addr, pgRepoManager))
		})

		managers = append(managers, repoManager{
			Name:    "postgres",
			Manager: pgRepoManager,
		})
	}

	return managers
}

func randomURef(rights domain.AccessRights) domain.URef {
	var addr [domain.AddrLength]byte
	copy(addr[:], randstr.Bytes(domain.AddrLength))
	return domain.NewURef(addr, rights)
}

func randomAccountKey() domain.Key {
	var account domain.AccountHash
	copy(account[:], randstr.Bytes(domain.AddrLength))
	return domain.NewAccountKey(account)
}
