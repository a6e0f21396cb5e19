package nft

import (
	"errors"
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
)

var (
	ErrTokenExists   = errors.New("token already exists")
	ErrTokenNotFound = errors.New("token not found")
	ErrNotOwner      = errors.New("sender does not own token")
)

// Contract is the embedded deed sub-contract. It is stateless; every call
// operates on the transaction-bound store handed in by the engine.
type Contract struct{}

func NewContract() Contract {
	return Contract{}
}

func (c Contract) Mint(s Store, msg MintMsg) error {
	old, err := s.ReadDeed(msg.TokenID)
	if err != nil {
		return err
	}
	if old != nil {
		return fmt.Errorf("%w: %s", ErrTokenExists, msg.TokenID)
	}
	deed := &Deed{
		TokenID:   msg.TokenID,
		Owner:     msg.Owner,
		TokenURI:  msg.TokenURI,
		Extension: msg.Extension,
		CreatedAt: msg.CreatedAt,
	}
	logger.Verbosef("nft.Mint(%s) => %s\n", msg.TokenID, msg.Owner)
	return s.WriteDeed(deed)
}

func (c Contract) Transfer(s Store, sender, recipient, tokenID string) error {
	deed, err := c.owned(s, sender, tokenID)
	if err != nil {
		return err
	}
	return s.MoveDeed(deed, recipient)
}

func (c Contract) Burn(s Store, sender, tokenID string) error {
	deed, err := c.owned(s, sender, tokenID)
	if err != nil {
		return err
	}
	return s.DeleteDeed(deed)
}

// Send moves the deed to a contract address; the attached payload is
// delivered to the target by the host runtime.
func (c Contract) Send(s Store, sender, tokenID, contractAddr, payload string) error {
	deed, err := c.owned(s, sender, tokenID)
	if err != nil {
		return err
	}
	logger.Verbosef("nft.Send(%s) => %s %s\n", tokenID, contractAddr, payload)
	return s.MoveDeed(deed, contractAddr)
}

func (c Contract) TokensByOwner(s Store, owner, startAfter string, limit int) ([]string, error) {
	deeds, err := s.ListDeedsByOwner(owner, startAfter, limit)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(deeds))
	for i, d := range deeds {
		tokens[i] = d.TokenID
	}
	return tokens, nil
}

func (c Contract) DeedInfo(s Store, tokenID string) (*Deed, error) {
	deed, err := s.ReadDeed(tokenID)
	if err != nil {
		return nil, err
	}
	if deed == nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, tokenID)
	}
	return deed, nil
}

func (c Contract) owned(s Store, sender, tokenID string) (*Deed, error) {
	deed, err := s.ReadDeed(tokenID)
	if err != nil {
		return nil, err
	}
	if deed == nil {
		return nil, fmt.Errorf("%w: %s", ErrTokenNotFound, tokenID)
	}
	if deed.Owner != sender {
		return nil, fmt.Errorf("%w: %s", ErrNotOwner, tokenID)
	}
	return deed, nil
}
