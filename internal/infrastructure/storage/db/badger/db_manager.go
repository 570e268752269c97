package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/fundraiser-daemon/internal/core/domain"
	"github.com/tdex-network/fundraiser-daemon/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const (
	fundraiserDbDir = "fundraiser"

	// maxConflictRetries is the number of times a transaction is re-run when
	// badger detects a conflicting concurrent write.
	maxConflictRetries = 50
)

type txKey struct{}

// repoManager holds the badgerhold store shared by all repositories so that
// a single badger transaction can span all of them.
type repoManager struct {
	store *badgerhold.Store

	purseRepository    domain.PurseRepository
	ledgerRepository   domain.LedgerRepository
	namedKeyRepository domain.NamedKeyRepository
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// It expects a base data dir and an optional logger. An empty data dir makes
// the store live in memory only.
func NewRepoManager(
	baseDbDir string, logger badger.Logger,
) (ports.RepoManager, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, fundraiserDbDir)
	}

	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening fundraiser db: %w", err)
	}

	return &repoManager{
		store:              store,
		purseRepository:    NewPurseRepositoryImpl(store),
		ledgerRepository:   NewLedgerRepositoryImpl(store),
		namedKeyRepository: NewNamedKeyRepositoryImpl(store),
	}, nil
}

func (d *repoManager) PurseRepository() domain.PurseRepository {
	return d.purseRepository
}

func (d *repoManager) LedgerRepository() domain.LedgerRepository {
	return d.ledgerRepository
}

func (d *repoManager) NamedKeyRepository() domain.NamedKeyRepository {
	return d.namedKeyRepository
}

func (d *repoManager) Close() {
	if err := d.store.Close(); err != nil {
		log.WithError(err).Warn("error while closing fundraiser db")
	}
}

// RunTransaction runs the handler within a badger transaction. Since badger
// transactions are optimistic, the handler is run again whenever the commit
// fails because of a conflict with a concurrent transaction.
func (d *repoManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	if _, ok := ctx.Value(txKey{}).(*badger.Txn); ok {
		return handler(ctx)
	}

	for attempt := 0; ; attempt++ {
		res, err := d.runTransaction(ctx, readOnly, handler)
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			log.Debugf("transaction conflict, retrying (%d)", attempt+1)
			time.Sleep(time.Duration(rand.Intn(attempt+1)+1) * time.Millisecond)
			continue
		}
		return res, err
	}
}

func (d *repoManager) runTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// withTx runs fn within the transaction carried by the context, if any, or
// within a new one otherwise.
func withTx(
	ctx context.Context,
	store *badgerhold.Store,
	readOnly bool,
	fn func(tx *badger.Txn) error,
) error {
	if tx, ok := ctx.Value(txKey{}).(*badger.Txn); ok {
		return fn(tx)
	}
	if readOnly {
		return store.Badger().View(fn)
	}
	return store.Badger().Update(fn)
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
