package market_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/market"
	"github.com/pixory/pixory/nft"
	"github.com/pixory/pixory/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnv = market.Env{BlockTime: time.Unix(1700000000, 0)}

func newEngine(t *testing.T) (*market.Contract, *store.BadgerStore) {
	t.Helper()
	bs, err := store.OpenBadger(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })
	return market.NewContract(bs, nft.NewContract()), bs
}

func instantiate(t *testing.T, c *market.Contract, msg market.InstantiateMsg) {
	t.Helper()
	if msg.Name == "" {
		msg.Name = "pixory-test"
	}
	_, err := c.Instantiate(testEnv, caller("admin", 0), msg)
	require.NoError(t, err)
}

func caller(sender string, amount int64) market.MessageInfo {
	info := market.MessageInfo{Sender: sender}
	if amount > 0 {
		info.Funds = []comm.Coin{comm.NewCoin(amount, "uconst")}
	}
	return info
}

func u8(v uint8) *uint8 {
	return &v
}

func testCollectionMsg() *market.CreateCollectionMsg {
	return &market.CreateCollectionMsg{
		Name:        "Test Collection",
		Symbol:      "TC1",
		Description: "a test collection",
		Treasuries: []market.Treasury{
			{Wallet: "treasury-a", Percentage: 70},
			{Wallet: "treasury-b", Percentage: 30},
		},
		Prices: []market.PriceType{
			{PriceType: market.PriceTypeStandard, Value: comm.NewCoin(100, "uconst")},
		},
		Status: u8(market.CollectionStatusActivated),
	}
}

func createTestItems(t *testing.T, c *market.Contract, owner string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := c.Execute(testEnv, caller(owner, 0), market.ExecuteMsg{
			CreateItem: &market.CreateItemMsg{
				Item: market.Item{
					CollectionName:   "Test Collection",
					CollectionSymbol: "TC1",
					Name:             fmt.Sprintf("Item #00%d", i),
					Links: []market.Link{
						{LinkType: market.LinkTypeImage, Value: fmt.Sprintf("https://img.test/%d.png", i)},
					},
				},
			},
		})
		require.NoError(t, err)
	}
}

func itemsCount(t *testing.T, c *market.Contract, owner string) int {
	t.Helper()
	body, err := c.Query(market.QueryMsg{
		GetItemsCount: &market.GetItemsCountQuery{
			Owner: owner, CollectionName: "Test Collection", CollectionSymbol: "TC1",
		},
	})
	require.NoError(t, err)
	var res market.ItemCountResponse
	require.NoError(t, json.Unmarshal(body, &res))
	return res.Count
}

func TestCreateCollectionUniqueness(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	msg := market.ExecuteMsg{CreateCollection: testCollectionMsg()}
	_, err := c.Execute(testEnv, caller("alice", 0), msg)
	require.NoError(t, err)

	_, err = c.Execute(testEnv, caller("alice", 0), msg)
	assert.ErrorIs(t, err, market.ErrCollectionExists)

	// name+symbol are unique across owners too
	_, err = c.Execute(testEnv, caller("bob", 0), msg)
	assert.ErrorIs(t, err, market.ErrCollectionExists)
}

func TestCreateCollectionValidation(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	bad := testCollectionMsg()
	bad.Treasuries = []market.Treasury{{Wallet: "a", Percentage: 99}}
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: bad})
	assert.ErrorIs(t, err, market.ErrInvalidTreasuries)

	bad = testCollectionMsg()
	bad.Royalties = []market.Royalty{{Wallet: "a", Percentage: 16}}
	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: bad})
	assert.ErrorIs(t, err, market.ErrInvalidRoyalties)

	bad = testCollectionMsg()
	bad.Status = u8(9)
	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: bad})
	assert.ErrorIs(t, err, market.ErrInvalidCollectionStatus)
}

func TestCreateCollectionFee(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{
		Treasuries: []string{"platform-1", "platform-2"},
		Fees:       []comm.Fee{{Name: comm.FeeCreateCollection, Value: comm.NewCoin(1500, "uconst")}},
	})

	// fee not covered
	_, err := c.Execute(testEnv, caller("alice", 100), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	assert.ErrorIs(t, err, market.ErrInsufficientFund)

	res, err := c.Execute(testEnv, caller("alice", 134000), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	total := decimal.Zero
	for _, m := range res.Messages {
		total = total.Add(m.Amount.Amount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(1500)))
}

func TestUpdateCollection(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)

	desc := "renovated"
	later := market.Env{BlockTime: testEnv.BlockTime.Add(time.Hour)}
	_, err = c.Execute(later, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{
			Name:        "Test Collection",
			Symbol:      "TC1",
			Description: &desc,
			Status:      u8(market.CollectionStatusDeactivated),
		},
	})
	require.NoError(t, err)

	body, err := c.Query(market.QueryMsg{
		GetCollection: &market.GetCollectionQuery{Owner: "alice", Name: "Test Collection", Symbol: "TC1"},
	})
	require.NoError(t, err)
	var res market.CollectionResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotNil(t, res.Collection)
	assert.Equal(t, "renovated", res.Collection.Description)
	assert.Equal(t, market.CollectionStatusDeactivated, res.Collection.Status)
	// untouched fields survive the merge
	assert.Len(t, res.Collection.Treasuries, 2)
	assert.True(t, res.Collection.DateUpdated.After(res.Collection.DateCreated))

	// nothing supplied: flagged as a no-op, not an error
	noop, err := c.Execute(later, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{Name: "Test Collection", Symbol: "TC1"},
	})
	require.NoError(t, err)
	assert.Contains(t, noop.Attributes, market.ResponseAttribute{Key: "message", Value: "Nothing updated!"})

	_, err = c.Execute(later, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{Name: "Nope", Symbol: "NO"},
	})
	assert.ErrorIs(t, err, market.ErrCollectionNotFound)
}

func attributes(r *market.Response) []market.ResponseAttribute {
	return r.Attributes
}

func TestRemoveCollectionGatingAndCascade(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)
	createTestItems(t, c, "alice", 3)

	remove := market.ExecuteMsg{RemoveCollection: &market.RemoveCollectionMsg{Name: "Test Collection", Symbol: "TC1"}}

	// activated collections cannot be removed
	_, err = c.Execute(testEnv, caller("alice", 0), remove)
	assert.ErrorIs(t, err, market.ErrInvalidCollectionStatus)

	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{
			Name: "Test Collection", Symbol: "TC1",
			Status: u8(market.CollectionStatusDeactivated),
		},
	})
	require.NoError(t, err)

	_, err = c.Execute(testEnv, caller("alice", 0), remove)
	require.NoError(t, err)

	assert.Equal(t, 0, itemsCount(t, c, "alice"))

	body, err := c.Query(market.QueryMsg{
		GetCollection: &market.GetCollectionQuery{Owner: "alice", Name: "Test Collection", Symbol: "TC1"},
	})
	require.NoError(t, err)
	var res market.CollectionResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Nil(t, res.Collection)
}

func TestMintItemScenario(t *testing.T) {
	c, bs := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)
	createTestItems(t, c, "alice", 5)

	res, err := c.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 42, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
			TokenURI: "https://some.metadata/x199x.json",
		},
	})
	require.NoError(t, err)

	// exactly one item consumed
	assert.Equal(t, 4, itemsCount(t, c, "alice"))

	// two transfers summing to the standard price, split 70/30
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "treasury-a", res.Messages[0].ToAddress)
	assert.True(t, res.Messages[0].Amount.Amount.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, "treasury-b", res.Messages[1].ToAddress)
	assert.True(t, res.Messages[1].Amount.Amount.Equal(decimal.NewFromInt(30)))

	// the buyer owns the minted deed
	err = bs.View(func(s market.Store) error {
		deeds, err := s.ListDeedsByOwner("buyer", "", 10)
		require.NoError(t, err)
		require.Len(t, deeds, 1)
		assert.Equal(t, "https://some.metadata/x199x.json", deeds[0].TokenURI)
		// deeds carry the block time, never the wall clock
		assert.True(t, deeds[0].CreatedAt.Equal(testEnv.BlockTime))
		return nil
	})
	require.NoError(t, err)

	// identical seed against an identical item list picks the same item
	c2, _ := newEngine(t)
	instantiate(t, c2, market.InstantiateMsg{})
	_, err = c2.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)
	createTestItems(t, c2, "alice", 5)
	res2, err := c2.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 42, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, attrValue(res, "item"), attrValue(res2, "item"))
}

func attrValue(r *market.Response, key string) string {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

type failingMinter struct {
	nft.Contract
}

func (f failingMinter) Mint(s nft.Store, msg nft.MintMsg) error {
	return fmt.Errorf("deed registry unavailable")
}

func TestMintAtomicity(t *testing.T) {
	bs, err := store.OpenBadger(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })

	broken := market.NewContract(bs, failingMinter{})
	instantiate(t, broken, market.InstantiateMsg{})
	_, err = broken.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)

	working := market.NewContract(bs, nft.NewContract())
	createTestItems(t, working, "alice", 5)

	mint := market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 42, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
		},
	}
	_, err = broken.Execute(testEnv, caller("buyer", 100), mint)
	assert.ErrorIs(t, err, market.ErrFailedToMintNft)

	// the failed mint consumed nothing, a retry is possible
	assert.Equal(t, 5, itemsCount(t, working, "alice"))

	_, err = working.Execute(testEnv, caller("buyer", 100), mint)
	require.NoError(t, err)
	assert.Equal(t, 4, itemsCount(t, working, "alice"))
}

func TestMintGating(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	mint := func(owner string) error {
		_, err := c.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
			MintItem: &market.MintItemMsg{
				Seed: 7, Owner: owner,
				CollectionName: "Test Collection", CollectionSymbol: "TC1",
			},
		})
		return err
	}

	assert.ErrorIs(t, mint("alice"), market.ErrCollectionNotFound)

	draft := testCollectionMsg()
	draft.Status = u8(market.CollectionStatusDraft)
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: draft})
	require.NoError(t, err)
	assert.ErrorIs(t, mint("alice"), market.ErrInvalidCollectionStatus)

	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{
			Name: "Test Collection", Symbol: "TC1",
			Status: u8(market.CollectionStatusActivated),
		},
	})
	require.NoError(t, err)

	// activated but no items staged
	assert.ErrorIs(t, mint("alice"), market.ErrNoItemsAvailable)

	createTestItems(t, c, "alice", 2)

	// unknown price type is a hard error before any effect
	_, err = c.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 7, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
			PriceType: u8(market.PriceTypeOG),
		},
	})
	assert.ErrorIs(t, err, market.ErrPriceTypeNotFound)
	assert.Equal(t, 2, itemsCount(t, c, "alice"))

	// short funds
	_, err = c.Execute(testEnv, caller("buyer", 99), market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 7, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
		},
	})
	assert.ErrorIs(t, err, market.ErrInsufficientFund)
}

func TestMintItemByName(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	msg := testCollectionMsg()
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: msg})
	require.NoError(t, err)
	createTestItems(t, c, "alice", 3)

	byName := func(name string) (*market.Response, error) {
		return c.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
			MintItemByName: &market.MintItemByNameMsg{
				Name: name, Owner: "alice",
				CollectionName: "Test Collection", CollectionSymbol: "TC1",
			},
		})
	}

	// the collection never opted in to minting by name
	_, err = byName("Item #002")
	assert.ErrorIs(t, err, market.ErrMintByNameNotAllowed)

	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{
		UpdateCollection: &market.UpdateCollectionMsg{
			Name: "Test Collection", Symbol: "TC1",
			Attributes: []market.Attribute{{Name: market.AttrAllowedMintItemByName, Value: "true"}},
		},
	})
	require.NoError(t, err)

	_, err = byName("Item #009")
	assert.ErrorIs(t, err, market.ErrItemNotFound)

	res, err := byName("Item #002")
	require.NoError(t, err)
	assert.Equal(t, "Item #002", attrValue(res, "item"))
	assert.Equal(t, 2, itemsCount(t, c, "alice"))

	// an item is consumed by its mint
	_, err = byName("Item #002")
	assert.ErrorIs(t, err, market.ErrItemNotFound)
}

func TestCreateItemChecks(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	createOne := market.ExecuteMsg{
		CreateItem: &market.CreateItemMsg{
			Item: market.Item{
				CollectionName:   "Test Collection",
				CollectionSymbol: "TC1",
				Name:             "Item #001",
			},
		},
	}

	_, err := c.Execute(testEnv, caller("alice", 0), createOne)
	assert.ErrorIs(t, err, market.ErrCollectionNotFound)

	_, err = c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)

	_, err = c.Execute(testEnv, caller("alice", 0), createOne)
	require.NoError(t, err)

	_, err = c.Execute(testEnv, caller("alice", 0), createOne)
	assert.ErrorIs(t, err, market.ErrItemExists)
}

func TestNftLifecycleThroughEngine(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})
	_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: testCollectionMsg()})
	require.NoError(t, err)
	createTestItems(t, c, "alice", 2)

	res, err := c.Execute(testEnv, caller("buyer", 100), market.ExecuteMsg{
		MintItem: &market.MintItemMsg{
			Seed: 1, Owner: "alice",
			CollectionName: "Test Collection", CollectionSymbol: "TC1",
		},
	})
	require.NoError(t, err)
	tokenID := attrValue(res, "key")
	require.NotEmpty(t, tokenID)

	// only the holder may transfer
	_, err = c.Execute(testEnv, caller("mallory", 0), market.ExecuteMsg{
		TransferNft: &market.TransferNftMsg{Recipient: "mallory", TokenID: tokenID},
	})
	assert.ErrorIs(t, err, market.ErrFailedToTransferNft)

	_, err = c.Execute(testEnv, caller("buyer", 0), market.ExecuteMsg{
		TransferNft: &market.TransferNftMsg{Recipient: "friend", TokenID: tokenID},
	})
	require.NoError(t, err)

	body, err := c.Query(market.QueryMsg{GetDeedInfo: &market.GetDeedInfoQuery{TokenID: tokenID}})
	require.NoError(t, err)
	var deedRes market.DeedResponse
	require.NoError(t, json.Unmarshal(body, &deedRes))
	assert.Equal(t, "friend", deedRes.Deed.Owner)

	_, err = c.Execute(testEnv, caller("friend", 0), market.ExecuteMsg{
		SendNft: &market.SendNftMsg{TokenID: tokenID, ContractAddr: "escrow", Action: `{"execute":{"action":"hold"}}`},
	})
	require.NoError(t, err)

	_, err = c.Execute(testEnv, caller("escrow", 0), market.ExecuteMsg{
		BurnNft: &market.BurnNftMsg{TokenID: tokenID},
	})
	require.NoError(t, err)

	_, err = c.Query(market.QueryMsg{GetDeedInfo: &market.GetDeedInfoQuery{TokenID: tokenID}})
	require.Error(t, err)
}

func TestActiveCollectionsQuery(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	mk := func(name, symbol, desc, category string, status uint8) {
		msg := &market.CreateCollectionMsg{
			Name: name, Symbol: symbol, Description: desc,
			Status: u8(status),
		}
		if category != "" {
			msg.Attributes = []market.Attribute{{Name: market.AttrCategory, Value: category}}
		}
		_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{CreateCollection: msg})
		require.NoError(t, err)
	}

	mk("Apes", "AP", "simian art", "art", market.CollectionStatusActivated)
	mk("Birds", "BD", "avian art", "art", market.CollectionStatusActivated)
	mk("Cars", "CR", "vroom", "vehicles", market.CollectionStatusActivated)
	mk("Drafts", "DR", "not yet", "art", market.CollectionStatusDraft)

	query := func(q market.GetActiveCollectionsQuery) market.ActiveCollectionsResponse {
		body, err := c.Query(market.QueryMsg{GetActiveCollections: &q})
		require.NoError(t, err)
		var res market.ActiveCollectionsResponse
		require.NoError(t, json.Unmarshal(body, &res))
		return res
	}

	all := query(market.GetActiveCollectionsQuery{})
	assert.Equal(t, 3, all.Total)
	assert.Len(t, all.Collections, 3)

	arts := query(market.GetActiveCollectionsQuery{Category: "art"})
	assert.Len(t, arts.Collections, 2)
	// total still counts every activated collection
	assert.Equal(t, 3, arts.Total)

	kw := query(market.GetActiveCollectionsQuery{Keyword: "avian"})
	require.Len(t, kw.Collections, 1)
	assert.Equal(t, "Birds", kw.Collections[0].Name)

	skip := 1
	limit := 1
	page := query(market.GetActiveCollectionsQuery{Start: &skip, Limit: &limit})
	assert.Len(t, page.Collections, 1)
}

func TestPaginationClamp(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	for i := 0; i < 25; i++ {
		_, err := c.Execute(testEnv, caller("alice", 0), market.ExecuteMsg{
			CreateCollection: &market.CreateCollectionMsg{
				Name: fmt.Sprintf("Coll %02d", i), Symbol: "S",
			},
		})
		require.NoError(t, err)
	}

	body, err := c.Query(market.QueryMsg{
		GetCollections: &market.GetCollectionsQuery{Owner: "alice"},
	})
	require.NoError(t, err)
	var res market.CollectionsResponse
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Len(t, res.Collections, market.DefaultLimit)

	big := 50
	body, err = c.Query(market.QueryMsg{
		GetCollections: &market.GetCollectionsQuery{Owner: "alice", Limit: &big},
	})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Len(t, res.Collections, market.MaxLimit)

	// a zero or negative limit falls back to the default page size instead
	// of disabling the cap
	for _, bad := range []int{0, -3} {
		l := bad
		body, err = c.Query(market.QueryMsg{
			GetCollections: &market.GetCollectionsQuery{Owner: "alice", Limit: &l},
		})
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Len(t, res.Collections, market.DefaultLimit, "limit %d", bad)
	}
}

func TestUpdateContractInfo(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{Admins: []string{"admin"}})

	_, err := c.Execute(testEnv, caller("mallory", 0), market.ExecuteMsg{
		UpdateContractInfo: &market.UpdateContractInfoMsg{Treasuries: []string{"mallory"}},
	})
	assert.ErrorIs(t, err, market.ErrUnauthorized)

	_, err = c.Execute(testEnv, caller("admin", 0), market.ExecuteMsg{
		UpdateContractInfo: &market.UpdateContractInfoMsg{
			Fees: []comm.Fee{{Name: comm.FeeNftMinting, Value: comm.NewCoin(6400, "uconst")}},
		},
	})
	require.NoError(t, err)

	body, err := c.Query(market.QueryMsg{GetContractInfo: &struct{}{}})
	require.NoError(t, err)
	var res market.ContractInfoResponse
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotNil(t, res.Info)
	require.Len(t, res.Info.Fees, 1)
	assert.Equal(t, comm.FeeNftMinting, res.Info.Fees[0].Name)
}

func TestMigrate(t *testing.T) {
	c, _ := newEngine(t)
	instantiate(t, c, market.InstantiateMsg{})

	res, err := c.Migrate(testEnv, caller("admin", 0), market.MigrateMsg{Version: market.ContractVersion})
	require.NoError(t, err)
	assert.Equal(t, "version unchanged", attrValue(res, "message"))

	res, err = c.Migrate(testEnv, caller("admin", 0), market.MigrateMsg{Version: "2.0.0"})
	require.NoError(t, err)
	assert.Equal(t, market.ContractVersion, attrValue(res, "previous_version"))
}
