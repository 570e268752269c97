package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	dbbadger "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
	"github.com/thanhpk/randstr"
)

var repoManagerFactories = []struct {
	name    string
	factory func(t *testing.T) ports.RepoManager
}{
	{
		name: "badger",
		factory: func(t *testing.T) ports.RepoManager {
			repoManager, err := dbbadger.NewRepoManager("", nil)
			require.NoError(t, err)
			t.Cleanup(repoManager.Close)
			return repoManager
		},
	},
	{
		name: "inmemory",
		factory: func(_ *testing.T) ports.RepoManager {
			return inmemory.NewRepoManager()
		},
	},
}

func randomAddr() [domain.AddrLength]byte {
	var addr [domain.AddrLength]byte
	copy(addr[:], randstr.Bytes(domain.AddrLength))
	return addr
}

func randomAccountKey() domain.Key {
	return domain.NewAccountKey(domain.AccountHash(randomAddr()))
}

func randomHashKey() domain.Key {
	return domain.NewHashKey(randomAddr())
}

func randomURefKey() domain.Key {
	return domain.NewURefKey(domain.NewURef(randomAddr(), domain.AccessRead))
}
