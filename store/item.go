package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pixory/pixory/market"
)

const prefixItemPayload = "PIXORY:ITEM:"

func itemPayloadKey(owner, collectionID, name string) []byte {
	return []byte(prefixItemPayload + owner + ":" + collectionID + ":" + name)
}

func itemScanPrefix(owner, collectionID string) []byte {
	return []byte(prefixItemPayload + owner + ":" + collectionID + ":")
}

func (s *txnStore) SaveItem(i *market.Item) error {
	key := itemPayloadKey(i.CollectionOwner, market.CollectionID(i.CollectionName, i.CollectionSymbol), i.Name)
	return s.txn.Set(key, marshal(i))
}

func (s *txnStore) ReadItem(owner, collectionID, name string) (*market.Item, error) {
	val, err := s.readValue(itemPayloadKey(owner, collectionID, name))
	if err != nil || val == nil {
		return nil, err
	}
	var i market.Item
	err = unmarshal(val, &i)
	return &i, err
}

func (s *txnStore) RemoveItem(owner, collectionID, name string) error {
	return s.txn.Delete(itemPayloadKey(owner, collectionID, name))
}

// ListItems scans the collection's items ascending by name, at most limit
// entries after the exclusive startAfter cursor.
func (s *txnStore) ListItems(owner, collectionID, startAfter string, limit int) ([]*market.Item, error) {
	return s.listItems(owner, collectionID, startAfter, limit)
}

// ScanItems loads the full working set of a collection, used for random
// mint candidate selection; pagination limits do not apply here.
func (s *txnStore) ScanItems(owner, collectionID string) ([]*market.Item, error) {
	return s.listItems(owner, collectionID, "", 0)
}

func (s *txnStore) listItems(owner, collectionID, startAfter string, limit int) ([]*market.Item, error) {
	prefix := itemScanPrefix(owner, collectionID)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := s.txn.NewIterator(opts)
	defer it.Close()

	var items []*market.Item
	for it.Seek(prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var i market.Item
		err = unmarshal(val, &i)
		if err != nil {
			return nil, err
		}
		if startAfter != "" && i.Name <= startAfter {
			continue
		}
		items = append(items, &i)
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *txnStore) CountItems(owner, collectionID string) (int, error) {
	prefix := itemScanPrefix(owner, collectionID)
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := s.txn.NewIterator(opts)
	defer it.Close()

	count := 0
	for it.Seek(prefix); it.Valid(); it.Next() {
		count++
	}
	return count, nil
}

// RemoveAllItems cascades a collection removal in two phases: collect every
// key under the prefix first, then delete. The store must not be mutated
// while its range view is being iterated.
func (s *txnStore) RemoveAllItems(owner, collectionID string) (int, error) {
	prefix := itemScanPrefix(owner, collectionID)
	var keys [][]byte
	{
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := s.txn.NewIterator(opts)
		for it.Seek(prefix); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()
	}

	for _, key := range keys {
		if err := s.txn.Delete(key); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}
