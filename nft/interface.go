package nft

import "time"

// Store is the deed table the sub-contract persists tokens in. It is bound
// to the calling transaction, so deed writes commit or abort together with
// the rest of the call.
type Store interface {
	WriteDeed(d *Deed) error
	ReadDeed(tokenID string) (*Deed, error)
	DeleteDeed(d *Deed) error
	MoveDeed(d *Deed, newOwner string) error
	ListDeedsByOwner(owner, startAfter string, limit int) ([]*Deed, error)
}

// Minter is the narrow surface the marketplace engine invokes on the
// embedded token sub-contract.
type Minter interface {
	Mint(s Store, msg MintMsg) error
	Transfer(s Store, sender, recipient, tokenID string) error
	Burn(s Store, sender, tokenID string) error
	Send(s Store, sender, tokenID, contractAddr, payload string) error
	TokensByOwner(s Store, owner, startAfter string, limit int) ([]string, error)
	DeedInfo(s Store, tokenID string) (*Deed, error)
}

type MintMsg struct {
	TokenID   string    `json:"token_id"`
	Owner     string    `json:"owner"`
	TokenURI  string    `json:"token_uri,omitempty"`
	Extension Metadata  `json:"extension"`
	CreatedAt time.Time `json:"created_at"`
}
