package market

import (
	"encoding/json"
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/nft"
)

const (
	ContractName    = "pixory-market"
	ContractVersion = "1.1.0"

	versionPropertyKey = "MARKET:CONTRACT:VERSION"
)

// Contract is the marketplace engine. The host runtime dispatches
// instantiate, execute, query and migrate calls into it; every execute runs
// in a single storage transaction so a failure leaves zero effects.
type Contract struct {
	db     DB
	minter nft.Minter
}

func NewContract(db DB, minter nft.Minter) *Contract {
	return &Contract{db: db, minter: minter}
}

func (c *Contract) Instantiate(env Env, info MessageInfo, msg InstantiateMsg) (*Response, error) {
	var res *Response
	err := c.db.Update(func(s Store) error {
		ci := &comm.ContractInfo{
			Name:           msg.Name,
			Admins:         msg.Admins,
			Treasuries:     msg.Treasuries,
			Fees:           msg.Fees,
			Contracts:      msg.Contracts,
			LogLastPayment: msg.LogLastPayment,
		}
		if len(ci.Admins) == 0 {
			ci.Admins = []string{info.Sender}
		}
		if err := s.WriteContractInfo(ci); err != nil {
			return err
		}
		if err := s.WriteProperty(versionPropertyKey, []byte(ContractVersion)); err != nil {
			return err
		}
		res = &Response{}
		res.AddAttribute("method", "instantiate")
		res.AddAttribute("owner", info.Sender)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Printf("market.Instantiate(%s) => %s\n", msg.Name, info.Sender)
	return res, nil
}

func (c *Contract) Execute(env Env, info MessageInfo, msg ExecuteMsg) (*Response, error) {
	var res *Response
	err := c.db.Update(func(s Store) error {
		var e error
		res, e = c.dispatch(env, info, s, msg)
		return e
	})
	if err != nil {
		logger.Verbosef("market.Execute() => %v\n", err)
		return nil, err
	}
	return res, nil
}

func (c *Contract) dispatch(env Env, info MessageInfo, s Store, msg ExecuteMsg) (*Response, error) {
	switch {
	case msg.CreateCollection != nil:
		return c.createCollection(env, info, s, msg.CreateCollection)
	case msg.UpdateCollection != nil:
		return c.updateCollection(env, info, s, msg.UpdateCollection)
	case msg.RemoveCollection != nil:
		return c.removeCollection(env, info, s, msg.RemoveCollection)
	case msg.CreateItem != nil:
		return c.createItem(env, info, s, msg.CreateItem)
	case msg.MintItem != nil:
		return c.mintItem(env, info, s, msg.MintItem)
	case msg.MintItemByName != nil:
		return c.mintItemByName(env, info, s, msg.MintItemByName)
	case msg.TransferNft != nil:
		return c.transferNft(info, s, msg.TransferNft)
	case msg.BurnNft != nil:
		return c.burnNft(info, s, msg.BurnNft)
	case msg.SendNft != nil:
		return c.sendNft(info, s, msg.SendNft)
	case msg.UpdateContractInfo != nil:
		return c.updateContractInfo(info, s, msg.UpdateContractInfo)
	}
	return nil, fmt.Errorf("%w: no action set", ErrInvalidMessage)
}

// updateContractInfo merges the supplied fields into the contract info
// singleton. Admin only.
func (c *Contract) updateContractInfo(info MessageInfo, s Store, msg *UpdateContractInfoMsg) (*Response, error) {
	ci, err := s.ReadContractInfo()
	if err != nil {
		return nil, err
	}
	if ci == nil || !ci.IsAdmin(info.Sender) {
		return nil, fmt.Errorf("%w: %s is not an admin", ErrUnauthorized, info.Sender)
	}

	if msg.Admins != nil {
		ci.Admins = msg.Admins
	}
	if msg.Treasuries != nil {
		ci.Treasuries = msg.Treasuries
	}
	if msg.Fees != nil {
		ci.Fees = msg.Fees
	}
	if msg.Contracts != nil {
		ci.Contracts = msg.Contracts
	}
	if msg.LogLastPayment != nil {
		ci.LogLastPayment = *msg.LogLastPayment
	}
	if err := s.WriteContractInfo(ci); err != nil {
		return nil, err
	}
	return commonResponse(ci.Name, "update_contract_info", statusOK, "", nil), nil
}

// Query resolves a read request against a consistent snapshot and returns
// the JSON-encoded response body.
func (c *Contract) Query(msg QueryMsg) ([]byte, error) {
	var body interface{}
	err := c.db.View(func(s Store) error {
		var e error
		body, e = c.resolveQuery(s, msg)
		return e
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(body)
}

func (c *Contract) resolveQuery(s Store, msg QueryMsg) (interface{}, error) {
	switch {
	case msg.GetCollection != nil:
		return c.getCollection(s, msg.GetCollection)
	case msg.GetCollections != nil:
		return c.getCollections(s, msg.GetCollections)
	case msg.GetAllCollections != nil:
		return c.getAllCollections(s, msg.GetAllCollections)
	case msg.GetActiveCollections != nil:
		return c.getActiveCollections(s, msg.GetActiveCollections)
	case msg.GetItem != nil:
		return c.getItem(s, msg.GetItem)
	case msg.GetItems != nil:
		return c.getItems(s, msg.GetItems)
	case msg.GetItemsCount != nil:
		return c.getItemsCount(s, msg.GetItemsCount)
	case msg.GetContractInfo != nil:
		return c.getContractInfo(s)
	case msg.GetTokens != nil:
		return c.getTokens(s, msg.GetTokens)
	case msg.GetDeedInfo != nil:
		return c.getDeedInfo(s, msg.GetDeedInfo)
	}
	return nil, fmt.Errorf("%w: no query set", ErrInvalidMessage)
}

// Migrate bumps the stored contract version. Matching versions are a no-op.
func (c *Contract) Migrate(env Env, info MessageInfo, msg MigrateMsg) (*Response, error) {
	var res *Response
	err := c.db.Update(func(s Store) error {
		old, err := s.ReadProperty(versionPropertyKey)
		if err != nil {
			return err
		}
		if string(old) == msg.Version {
			res = commonResponse(msg.Version, "migrate", statusOK, "version unchanged", nil)
			return nil
		}
		if err := s.WriteProperty(versionPropertyKey, []byte(msg.Version)); err != nil {
			return err
		}
		res = commonResponse(msg.Version, "migrate", statusOK, "", nil)
		res.AddAttribute("previous_version", string(old))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
