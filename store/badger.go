package store

import (
	"context"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/pixory/pixory/market"
)

const (
	prefixProperty = "PIXORY:PROPERTY:"
)

type BadgerStore struct {
	db *badger.DB
}

func OpenBadger(ctx context.Context, path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			lsm, vlog := db.Size()
			logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
			if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
				err := db.RunValueLogGC(0.5)
				logger.Printf("Badger RunValueLogGC %v\n", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Minute):
			}
		}
	}()

	return &BadgerStore{db: db}, nil
}

func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}

func (bs *BadgerStore) Badger() *badger.DB {
	return bs.db
}

// Update runs fn against a read-write transaction; all writes commit
// together or, on any error, none of them do.
func (bs *BadgerStore) Update(fn func(s market.Store) error) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return fn(&txnStore{txn: txn})
	})
}

// View runs fn against a consistent read snapshot.
func (bs *BadgerStore) View(fn func(s market.Store) error) error {
	return bs.db.View(func(txn *badger.Txn) error {
		return fn(&txnStore{txn: txn})
	})
}

// txnStore binds the market store surface to one badger transaction.
type txnStore struct {
	txn *badger.Txn
}

func (s *txnStore) readValue(key []byte) ([]byte, error) {
	item, err := s.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (s *txnStore) ReadProperty(key string) ([]byte, error) {
	return s.readValue([]byte(prefixProperty + key))
}

func (s *txnStore) WriteProperty(key string, val []byte) error {
	return s.txn.Set([]byte(prefixProperty+key), val)
}
