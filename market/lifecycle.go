package market

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/pixory/pixory/comm"
)

// contractFee resolves the named platform fee and builds the transfers
// paying it to the configured contract treasuries. When enforceFunds is set
// the attached funds must cover the fee. An unconfigured fee costs nothing.
func (c *Contract) contractFee(s Store, info MessageInfo, feeName string, now time.Time, enforceFunds bool) ([]comm.BankMsg, error) {
	ci, err := s.ReadContractInfo()
	if err != nil {
		return nil, err
	}
	if ci == nil {
		return nil, nil
	}
	fee := ci.FeeByName(feeName)
	if fee == nil || fee.Value.IsZero() {
		return nil, nil
	}
	if enforceFunds {
		if err := checkFundsSufficient(info, fee.Value); err != nil {
			return nil, err
		}
	}
	msgs := comm.TryPayingContractTreasuries(ci, feeName, info.Sender, now)
	if ci.LogLastPayment {
		if err := s.WriteContractInfo(ci); err != nil {
			return nil, err
		}
	}
	return msgs, nil
}

func (c *Contract) createCollection(env Env, info MessageInfo, s Store, msg *CreateCollectionMsg) (*Response, error) {
	owner := info.Sender

	if err := checkCollectionNotExists(s, owner, msg.Name, msg.Symbol); err != nil {
		return nil, err
	}
	status, err := resolveStatus(msg.Status)
	if err != nil {
		return nil, err
	}
	if err := validateTreasuries(msg.Treasuries); err != nil {
		return nil, err
	}
	if err := validateRoyalties(msg.Royalties); err != nil {
		return nil, err
	}

	msgs, err := c.contractFee(s, info, comm.FeeCreateCollection, env.BlockTime, true)
	if err != nil {
		return nil, err
	}

	collection := &Collection{
		Owner:       owner,
		Name:        msg.Name,
		Symbol:      msg.Symbol,
		Description: msg.Description,
		Treasuries:  msg.Treasuries,
		Attributes:  msg.Attributes,
		Prices:      msg.Prices,
		Royalties:   msg.Royalties,
		Status:      status,
		DateCreated: env.BlockTime,
		DateUpdated: env.BlockTime,
	}
	if err := s.SaveCollection(collection); err != nil {
		return nil, err
	}

	key := owner + "-" + collection.ID()
	logger.Verbosef("market.createCollection(%s) => OK\n", key)
	return commonResponse(key, "create_collection", statusOK, "", msgs), nil
}

func (c *Contract) updateCollection(env Env, info MessageInfo, s Store, msg *UpdateCollectionMsg) (*Response, error) {
	owner := info.Sender

	if err := validateTreasuries(msg.Treasuries); err != nil {
		return nil, err
	}
	if err := validateRoyalties(msg.Royalties); err != nil {
		return nil, err
	}
	if msg.Status != nil {
		if _, err := resolveStatus(msg.Status); err != nil {
			return nil, err
		}
	}

	id := CollectionID(msg.Name, msg.Symbol)
	collection, err := s.ReadCollection(owner, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: collection %s", ErrCollectionNotFound, id)
	}

	// Only supplied fields overwrite the stored record.
	updated := false
	if msg.Description != nil {
		collection.Description = *msg.Description
		updated = true
	}
	if msg.Treasuries != nil {
		collection.Treasuries = msg.Treasuries
		updated = true
	}
	if msg.Prices != nil {
		collection.Prices = msg.Prices
		updated = true
	}
	if msg.Attributes != nil {
		collection.Attributes = msg.Attributes
		updated = true
	}
	if msg.Royalties != nil {
		collection.Royalties = msg.Royalties
		updated = true
	}
	if msg.Status != nil {
		collection.Status = *msg.Status
		updated = true
	}

	key := owner + "-" + id
	if !updated {
		return commonResponse(key, "update_collection", statusError, "Nothing updated!", nil), nil
	}

	collection.DateUpdated = env.BlockTime
	if err := s.SaveCollection(collection); err != nil {
		return nil, err
	}
	return commonResponse(key, "update_collection", statusOK, "", nil), nil
}

func (c *Contract) removeCollection(env Env, info MessageInfo, s Store, msg *RemoveCollectionMsg) (*Response, error) {
	owner := info.Sender
	id := CollectionID(msg.Name, msg.Symbol)

	collection, err := s.ReadCollection(owner, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: collection %s", ErrCollectionNotFound, id)
	}
	if err := checkAllowedForRemoval(collection); err != nil {
		return nil, err
	}

	if err := s.RemoveCollection(owner, id); err != nil {
		return nil, err
	}
	removed, err := s.RemoveAllItems(owner, id)
	if err != nil {
		return nil, err
	}

	key := owner + "-" + id
	logger.Verbosef("market.removeCollection(%s) => %d items removed\n", key, removed)
	return commonResponse(key, "remove_collection", statusOK, "", nil), nil
}

func (c *Contract) createItem(env Env, info MessageInfo, s Store, msg *CreateItemMsg) (*Response, error) {
	owner := info.Sender
	item := msg.Item

	if err := checkCollectionExists(s, owner, item.CollectionName, item.CollectionSymbol); err != nil {
		return nil, err
	}
	id := CollectionID(item.CollectionName, item.CollectionSymbol)
	if err := checkItemNotExists(s, owner, id, item.Name); err != nil {
		return nil, err
	}

	msgs, err := c.contractFee(s, info, comm.FeeCreateItem, env.BlockTime, true)
	if err != nil {
		return nil, err
	}

	item.CollectionOwner = owner
	item.DateCreated = env.BlockTime
	item.DateUpdated = env.BlockTime
	if err := s.SaveItem(&item); err != nil {
		return nil, err
	}

	key := owner + "-" + id + "=" + item.Name
	return commonResponse(key, "create_item", statusOK, "", msgs), nil
}
