package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/market"
)

const (
	prefixCollectionPayload    = "PIXORY:COLLECTION:PAYLOAD:"
	prefixCollectionOwnerIndex = "PIXORY:COLLECTION:OWNER:"
	prefixCollectionIDIndex    = "PIXORY:COLLECTION:ID:"

	keyContractInfo = "PIXORY:CONTRACT:INFO"
)

func collectionPayloadKey(owner, id string) []byte {
	return []byte(prefixCollectionPayload + owner + ":" + id)
}

func collectionOwnerIndexKey(owner, id string) []byte {
	return []byte(prefixCollectionOwnerIndex + owner + ":" + id)
}

func collectionIDIndexKey(id string) []byte {
	return []byte(prefixCollectionIDIndex + id)
}

// SaveCollection writes the payload and both unique index keys in the call
// transaction. A save fails when the id index is already held by another
// owner, which is how name+symbol uniqueness holds across all owners.
func (s *txnStore) SaveCollection(c *market.Collection) error {
	id := c.ID()

	held, err := s.readValue(collectionIDIndexKey(id))
	if err != nil {
		return err
	}
	if held != nil && string(held) != c.Owner {
		return fmt.Errorf("%w: id %s held by another owner", market.ErrCollectionExists, id)
	}

	err = s.txn.Set(collectionPayloadKey(c.Owner, id), marshal(c))
	if err != nil {
		return err
	}
	err = s.txn.Set(collectionOwnerIndexKey(c.Owner, id), []byte(id))
	if err != nil {
		return err
	}
	return s.txn.Set(collectionIDIndexKey(id), []byte(c.Owner))
}

func (s *txnStore) ReadCollection(owner, id string) (*market.Collection, error) {
	val, err := s.readValue(collectionPayloadKey(owner, id))
	if err != nil || val == nil {
		return nil, err
	}
	var c market.Collection
	err = unmarshal(val, &c)
	return &c, err
}

func (s *txnStore) RemoveCollection(owner, id string) error {
	err := s.txn.Delete(collectionPayloadKey(owner, id))
	if err != nil {
		return err
	}
	err = s.txn.Delete(collectionOwnerIndexKey(owner, id))
	if err != nil {
		return err
	}
	return s.txn.Delete(collectionIDIndexKey(id))
}

// ListCollectionsByOwner scans the owner's collections ascending by id,
// returning at most limit entries after the exclusive startAfter cursor.
func (s *txnStore) ListCollectionsByOwner(owner, startAfter string, limit int) ([]*market.Collection, error) {
	prefix := []byte(prefixCollectionPayload + owner + ":")
	return s.listCollections(prefix, func(c *market.Collection) string { return c.ID() }, startAfter, limit)
}

// ListAllCollections scans every collection ascending by (owner, id); the
// cursor is the composite "owner:id" string.
func (s *txnStore) ListAllCollections(startAfter string, limit int) ([]*market.Collection, error) {
	prefix := []byte(prefixCollectionPayload)
	return s.listCollections(prefix, func(c *market.Collection) string { return c.Owner + ":" + c.ID() }, startAfter, limit)
}

func (s *txnStore) ScanCollections() ([]*market.Collection, error) {
	return s.listCollections([]byte(prefixCollectionPayload), nil, "", 0)
}

func (s *txnStore) listCollections(prefix []byte, cursor func(*market.Collection) string, startAfter string, limit int) ([]*market.Collection, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := s.txn.NewIterator(opts)
	defer it.Close()

	var collections []*market.Collection
	for it.Seek(prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var c market.Collection
		err = unmarshal(val, &c)
		if err != nil {
			return nil, err
		}
		if startAfter != "" && cursor != nil && cursor(&c) <= startAfter {
			continue
		}
		collections = append(collections, &c)
		if limit > 0 && len(collections) == limit {
			break
		}
	}
	return collections, nil
}

func (s *txnStore) ReadContractInfo() (*comm.ContractInfo, error) {
	val, err := s.readValue([]byte(keyContractInfo))
	if err != nil || val == nil {
		return nil, err
	}
	var info comm.ContractInfo
	err = unmarshal(val, &info)
	return &info, err
}

func (s *txnStore) WriteContractInfo(info *comm.ContractInfo) error {
	return s.txn.Set([]byte(keyContractInfo), marshal(info))
}
