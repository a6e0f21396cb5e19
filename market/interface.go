package market

import (
	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/nft"
)

// Store is the persistence surface of one call transaction. All reads
// observe every write made earlier in the same call; the deed table is
// embedded so delegated mints share the transaction boundary.
type Store interface {
	nft.Store

	// SaveCollection persists the collection and its two unique secondary
	// indexes, by (owner, id) and by id alone. It fails when either index
	// is already held by a different collection.
	SaveCollection(c *Collection) error
	ReadCollection(owner, id string) (*Collection, error)
	RemoveCollection(owner, id string) error
	ListCollectionsByOwner(owner, startAfter string, limit int) ([]*Collection, error)
	ListAllCollections(startAfter string, limit int) ([]*Collection, error)
	ScanCollections() ([]*Collection, error)

	SaveItem(i *Item) error
	ReadItem(owner, collectionID, name string) (*Item, error)
	RemoveItem(owner, collectionID, name string) error
	ListItems(owner, collectionID, startAfter string, limit int) ([]*Item, error)
	ScanItems(owner, collectionID string) ([]*Item, error)
	CountItems(owner, collectionID string) (int, error)
	RemoveAllItems(owner, collectionID string) (int, error)

	ReadContractInfo() (*comm.ContractInfo, error)
	WriteContractInfo(info *comm.ContractInfo) error
	ReadProperty(key string) ([]byte, error)
	WriteProperty(key string, val []byte) error
}

// DB runs call transactions. Update commits all writes atomically or none
// of them; View gives queries a consistent read snapshot.
type DB interface {
	Update(fn func(s Store) error) error
	View(fn func(s Store) error) error
}
