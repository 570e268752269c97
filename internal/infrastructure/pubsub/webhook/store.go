package webhookpubsub

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/timshannon/badgerhold/v4"
)

// webhookStore persists webhooks indexed by their action type.
type webhookStore struct {
	store *badgerhold.Store
}

// newWebhookStore opens (or creates) the store in the given dir. An empty
// dir makes the store live in memory only.
func newWebhookStore(dir string, logger badger.Logger) (*webhookStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = logger
	if len(dir) <= 0 {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}
	return &webhookStore{store}, nil
}

func (s *webhookStore) add(hook *Webhook) error {
	if err := s.store.Insert(hook.ID, *hook); err != nil {
		if err == badgerhold.ErrKeyExists {
			return nil
		}
		return err
	}
	return nil
}

func (s *webhookStore) remove(id string) error {
	return s.store.Badger().Update(func(tx *badger.Txn) error {
		var hook Webhook
		if err := s.store.TxGet(tx, id, &hook); err != nil {
			if err == badgerhold.ErrNotFound {
				return ErrWebhookNotFound
			}
			return err
		}
		return s.store.TxDelete(tx, id, hook)
	})
}

func (s *webhookStore) getByActions(actions ...WebhookAction) ([]Webhook, error) {
	in := make([]interface{}, 0, len(actions))
	for _, a := range actions {
		in = append(in, a)
	}

	var hooks []Webhook
	query := badgerhold.Where("ActionType").In(in...).SortBy("ID")
	if err := s.store.Find(&hooks, query); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (s *webhookStore) close() error {
	return s.store.Close()
}
