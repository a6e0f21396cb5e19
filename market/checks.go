package market

import (
	"fmt"

	"github.com/pixory/pixory/comm"
)

// Existence probes deliberately collapse storage read errors into "absent";
// a conservative default that makes create fail later on the save conflict
// rather than succeed against a half-read index.

func collectionExists(s Store, owner, name, symbol string) bool {
	c, err := s.ReadCollection(owner, CollectionID(name, symbol))
	if err != nil {
		return false
	}
	return c != nil
}

func checkCollectionNotExists(s Store, owner, name, symbol string) error {
	if collectionExists(s, owner, name, symbol) {
		return fmt.Errorf("%w: collection %s", ErrCollectionExists, CollectionID(name, symbol))
	}
	return nil
}

func checkCollectionExists(s Store, owner, name, symbol string) error {
	if !collectionExists(s, owner, name, symbol) {
		return fmt.Errorf("%w: collection %s", ErrCollectionNotFound, CollectionID(name, symbol))
	}
	return nil
}

func itemExists(s Store, owner, collectionID, name string) bool {
	i, err := s.ReadItem(owner, collectionID, name)
	if err != nil {
		return false
	}
	return i != nil
}

func checkItemNotExists(s Store, owner, collectionID, name string) error {
	if itemExists(s, owner, collectionID, name) {
		return fmt.Errorf("%w: item %s in collection %s", ErrItemExists, name, collectionID)
	}
	return nil
}

func isStatusValid(status uint8) bool {
	switch status {
	case CollectionStatusDraft, CollectionStatusActivated, CollectionStatusDeactivated:
		return true
	}
	return false
}

// resolveStatus validates a supplied status and defaults an absent one to
// Draft, so downstream code never handles an unset status.
func resolveStatus(status *uint8) (uint8, error) {
	if status == nil {
		return CollectionStatusDraft, nil
	}
	if !isStatusValid(*status) {
		return 0, fmt.Errorf("%w: status %d", ErrInvalidCollectionStatus, *status)
	}
	return *status, nil
}

// validateTreasuries enforces the strict allocation rule: when treasuries
// are supplied their percentages must sum to exactly 100.
func validateTreasuries(treasuries []Treasury) error {
	if len(treasuries) == 0 {
		return nil
	}
	total := 0
	for _, t := range treasuries {
		total += int(t.Percentage)
	}
	if total != 100 {
		return fmt.Errorf("%w: total percentage %d, must be exactly 100", ErrInvalidTreasuries, total)
	}
	return nil
}

// validateRoyalties caps the aggregate resale royalty at 15 percent.
func validateRoyalties(royalties []Royalty) error {
	if len(royalties) == 0 {
		return nil
	}
	total := 0
	for _, r := range royalties {
		total += int(r.Percentage)
	}
	if total > 15 {
		return fmt.Errorf("%w: total percentage %d, must not exceed 15", ErrInvalidRoyalties, total)
	}
	return nil
}

func checkAllowedForRemoval(c *Collection) error {
	if c.Status == CollectionStatusActivated {
		return fmt.Errorf("%w: activated collection cannot be removed", ErrInvalidCollectionStatus)
	}
	return nil
}

// checkFundsSufficient compares the first attached fund unit against the
// required amount and denomination.
func checkFundsSufficient(info MessageInfo, required comm.Coin) error {
	if len(info.Funds) == 0 {
		return fmt.Errorf("%w: sent none, required %s", ErrInsufficientFund, required)
	}
	sent := info.Funds[0]
	if sent.Denom != required.Denom || sent.Amount.LessThan(required.Amount) {
		return fmt.Errorf("%w: sent %s, required %s", ErrInsufficientFund, sent, required)
	}
	return nil
}
