package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/pixory/pixory/nft"
)

const (
	prefixDeedPayload    = "PIXORY:DEED:TOKEN:"
	prefixDeedOwnerIndex = "PIXORY:DEED:OWNER:"
)

func deedPayloadKey(tokenID string) []byte {
	return []byte(prefixDeedPayload + tokenID)
}

func deedOwnerIndexKey(owner, tokenID string) []byte {
	return []byte(prefixDeedOwnerIndex + owner + ":" + tokenID)
}

func (s *txnStore) WriteDeed(d *nft.Deed) error {
	err := s.txn.Set(deedPayloadKey(d.TokenID), marshal(d))
	if err != nil {
		return err
	}
	return s.txn.Set(deedOwnerIndexKey(d.Owner, d.TokenID), []byte(d.TokenID))
}

func (s *txnStore) ReadDeed(tokenID string) (*nft.Deed, error) {
	val, err := s.readValue(deedPayloadKey(tokenID))
	if err != nil || val == nil {
		return nil, err
	}
	var d nft.Deed
	err = unmarshal(val, &d)
	return &d, err
}

func (s *txnStore) DeleteDeed(d *nft.Deed) error {
	err := s.txn.Delete(deedPayloadKey(d.TokenID))
	if err != nil {
		return err
	}
	return s.txn.Delete(deedOwnerIndexKey(d.Owner, d.TokenID))
}

// MoveDeed reassigns ownership, keeping the owner index in step with the
// payload within the same transaction.
func (s *txnStore) MoveDeed(d *nft.Deed, newOwner string) error {
	err := s.txn.Delete(deedOwnerIndexKey(d.Owner, d.TokenID))
	if err != nil {
		return err
	}
	d.Owner = newOwner
	return s.WriteDeed(d)
}

func (s *txnStore) ListDeedsByOwner(owner, startAfter string, limit int) ([]*nft.Deed, error) {
	prefix := []byte(prefixDeedOwnerIndex + owner + ":")
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := s.txn.NewIterator(opts)
	defer it.Close()

	var deeds []*nft.Deed
	for it.Seek(prefix); it.Valid(); it.Next() {
		tokenID, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		if startAfter != "" && string(tokenID) <= startAfter {
			continue
		}
		deed, err := s.ReadDeed(string(tokenID))
		if err != nil {
			return nil, err
		}
		if deed == nil {
			continue
		}
		deeds = append(deeds, deed)
		if limit > 0 && len(deeds) == limit {
			break
		}
	}
	return deeds, nil
}
