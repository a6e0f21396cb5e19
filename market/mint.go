package market

import (
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/nft"
)

// mintItem mints a randomly selected item from the collection. The draw is
// deterministic in the caller-supplied seed.
func (c *Contract) mintItem(env Env, info MessageInfo, s Store, msg *MintItemMsg) (*Response, error) {
	collection, err := c.mintableCollection(s, msg.Owner, msg.CollectionName, msg.CollectionSymbol)
	if err != nil {
		return nil, err
	}

	items, err := s.ScanItems(msg.Owner, collection.ID())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: collection %s", ErrNoItemsAvailable, collection.ID())
	}

	rng := NewRandomNumGen(msg.Seed)
	index := rng.Range(0, uint64(len(items)-1))
	if index >= uint64(len(items)) {
		return nil, fmt.Errorf("%w: index %d of %d items", ErrNftIndexOutOfBound, index, len(items))
	}
	item := items[index]

	return c.mint(env, info, s, collection, item, mintParams{
		priceType: msg.PriceType,
		tokenURI:  msg.TokenURI,
		tokenID:   msg.TokenID,
		method:    "random-mint",
	})
}

func (c *Contract) mintItemByName(env Env, info MessageInfo, s Store, msg *MintItemByNameMsg) (*Response, error) {
	collection, err := c.mintableCollection(s, msg.Owner, msg.CollectionName, msg.CollectionSymbol)
	if err != nil {
		return nil, err
	}
	if !collection.IsMintByNameAllowed() {
		return nil, fmt.Errorf("%w: collection %s", ErrMintByNameNotAllowed, collection.ID())
	}

	item, err := s.ReadItem(msg.Owner, collection.ID(), msg.Name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %s", ErrItemNotFound, msg.Name)
	}

	return c.mint(env, info, s, collection, item, mintParams{
		priceType: msg.PriceType,
		tokenURI:  msg.TokenURI,
		tokenID:   msg.TokenID,
		method:    "mint-by-name",
	})
}

func (c *Contract) mintableCollection(s Store, owner, name, symbol string) (*Collection, error) {
	collection, err := s.ReadCollection(owner, CollectionID(name, symbol))
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, fmt.Errorf("%w: collection %s", ErrCollectionNotFound, CollectionID(name, symbol))
	}
	if collection.Status != CollectionStatusActivated {
		return nil, fmt.Errorf("%w: collection %s is not ready for minting", ErrInvalidCollectionStatus, collection.ID())
	}
	return collection, nil
}

type mintParams struct {
	priceType *uint8
	tokenURI  string
	tokenID   string
	method    string
}

// mint runs the tail of the workflow shared by random and named minting:
// price resolution, funds check, fee payment, delegated deed mint, and the
// removal of the consumed item. The item is removed only after the deed
// mint succeeded; a failed mint aborts the call with the item untouched.
func (c *Contract) mint(env Env, info MessageInfo, s Store, collection *Collection, item *Item, params mintParams) (*Response, error) {
	priceType := PriceTypeStandard
	if params.priceType != nil {
		priceType = *params.priceType
	}
	price := collection.PriceByType(priceType)
	if price == nil {
		return nil, fmt.Errorf("%w: price type %d in collection %s", ErrPriceTypeNotFound, priceType, collection.ID())
	}

	if err := checkFundsSufficient(info, *price); err != nil {
		return nil, err
	}

	payments := comm.PayByPercentage(*price, collection.TreasuryPayments())
	if price.Amount.IsPositive() && len(payments) == 0 {
		return nil, fmt.Errorf("%w: no treasuries resolved for %s", ErrFailedToMakePayment, collection.ID())
	}
	msgs := comm.ToBankMessages(payments)
	feeMsgs, err := c.contractFee(s, info, comm.FeeNftMinting, env.BlockTime, false)
	if err != nil {
		return nil, err
	}
	msgs = append(msgs, feeMsgs...)

	tokenID := params.tokenID
	if tokenID == "" {
		tokenID = nft.TokenID(item.Name, item.CollectionOwner, item.CollectionName, item.CollectionSymbol)
	}
	err = c.minter.Mint(s, nft.MintMsg{
		TokenID:   tokenID,
		Owner:     info.Sender,
		TokenURI:  params.tokenURI,
		Extension: item.Metadata(collection),
		CreatedAt: env.BlockTime,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToMintNft, err)
	}

	if err := s.RemoveItem(item.CollectionOwner, collection.ID(), item.Name); err != nil {
		return nil, err
	}

	logger.Verbosef("market.mint(%s) => %s %s\n", collection.ID(), item.Name, tokenID)
	res := commonResponse(tokenID, params.method, statusOK, "", msgs)
	res.AddAttribute("item", item.Name)
	return res, nil
}

func (c *Contract) transferNft(info MessageInfo, s Store, msg *TransferNftMsg) (*Response, error) {
	if err := c.minter.Transfer(s, info.Sender, msg.Recipient, msg.TokenID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToTransferNft, err)
	}
	return commonResponse(msg.TokenID, "transfer_nft", statusOK, "", nil), nil
}

func (c *Contract) burnNft(info MessageInfo, s Store, msg *BurnNftMsg) (*Response, error) {
	if err := c.minter.Burn(s, info.Sender, msg.TokenID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToBurnNft, err)
	}
	return commonResponse(msg.TokenID, "burn_nft", statusOK, "", nil), nil
}

func (c *Contract) sendNft(info MessageInfo, s Store, msg *SendNftMsg) (*Response, error) {
	if err := c.minter.Send(s, info.Sender, msg.TokenID, msg.ContractAddr, msg.Action); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToSendNft, err)
	}
	return commonResponse(msg.TokenID, "send_nft", statusOK, "", nil), nil
}
