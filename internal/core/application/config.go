package application

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	dbbadger "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/inmemory"
	postgresdb "github.com/tdex-network/fundraiser-daemon/internal/infrastructure/storage/db/pg"
)

const (
	DBBadger   = "badger"
	DBInMemory = "inmemory"
	DBPostgres = "postgres"
)

var (
	SupportedDBType = map[string]struct{}{
		DBBadger:   {},
		DBInMemory: {},
		DBPostgres: {},
	}
)

type Config struct {
	DBType string
	// DBConfig is the datadir for badger, a postgresdb.DbConfig for postgres,
	// and is ignored for inmemory.
	DBConfig interface{}

	SecurePubSub ports.SecurePubSub

	repo       ports.RepoManager
	pubsub     PubSubService
	fundraiser FundraiserService
}

func (c *Config) Validate() error {
	if _, ok := SupportedDBType[c.DBType]; !ok {
		return fmt.Errorf("db type %s is not supported", c.DBType)
	}
	if _, err := c.repoManager(); err != nil {
		return err
	}
	return nil
}

func (c *Config) RepoManager() ports.RepoManager {
	svc, _ := c.repoManager()
	return svc
}

func (c *Config) PubSubService() PubSubService {
	return c.pubsubService()
}

func (c *Config) FundraiserService() FundraiserService {
	svc, _ := c.fundraiserService()
	return svc
}

// Close closes the connections to storage and pubsub.
func (c *Config) Close() {
	if c.repo != nil {
		c.repo.Close()
		log.Debug("closed connection with db")
	}
	if c.pubsub != nil {
		c.pubsub.Close()
		log.Debug("closed pubsub service")
	}
}

func (c *Config) repoManager() (ports.RepoManager, error) {
	if c.repo == nil {
		switch c.DBType {
		case DBBadger:
			datadir, ok := c.DBConfig.(string)
			if !ok {
				return nil, fmt.Errorf("badger db config must be a datadir path")
			}
			repoManager, err := dbbadger.NewRepoManager(datadir, log.New())
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBPostgres:
			dbConfig, ok := c.DBConfig.(postgresdb.DbConfig)
			if !ok {
				return nil, fmt.Errorf("postgres db config is of invalid type")
			}
			repoManager, err := postgresdb.NewRepoManager(dbConfig)
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBInMemory:
			c.repo = inmemory.NewRepoManager()
		default:
			return nil, fmt.Errorf("db type %s is not supported", c.DBType)
		}
	}
	return c.repo, nil
}

func (c *Config) pubsubService() PubSubService {
	if c.pubsub == nil {
		c.pubsub = NewPubSubService(c.SecurePubSub)
	}
	return c.pubsub
}

func (c *Config) fundraiserService() (FundraiserService, error) {
	if c.fundraiser == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		var pubsub PubSubService
		if c.SecurePubSub != nil {
			pubsub = c.pubsubService()
		}
		c.fundraiser = NewFundraiserService(repo, pubsub)
	}
	return c.fundraiser, nil
}
