package market

import (
	"github.com/pixory/pixory/comm"
	"github.com/pixory/pixory/nft"
)

type InstantiateMsg struct {
	Name           string             `json:"name"`
	Admins         []string           `json:"admins,omitempty"`
	Treasuries     []string           `json:"treasuries,omitempty"`
	Fees           []comm.Fee         `json:"fees,omitempty"`
	Contracts      []comm.ContractRef `json:"contracts,omitempty"`
	LogLastPayment bool               `json:"log_last_payment,omitempty"`
}

type MigrateMsg struct {
	Version string `json:"version"`
}

type CreateCollectionMsg struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Description string      `json:"description,omitempty"`
	Treasuries  []Treasury  `json:"treasuries,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Prices      []PriceType `json:"prices,omitempty"`
	Royalties   []Royalty   `json:"royalties,omitempty"`
	Status      *uint8      `json:"status,omitempty"`
}

// UpdateCollectionMsg carries only the fields to overwrite; nil fields are
// left untouched on the stored record.
type UpdateCollectionMsg struct {
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Description *string     `json:"description,omitempty"`
	Treasuries  []Treasury  `json:"treasuries,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Prices      []PriceType `json:"prices,omitempty"`
	Royalties   []Royalty   `json:"royalties,omitempty"`
	Status      *uint8      `json:"status,omitempty"`
}

type RemoveCollectionMsg struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type CreateItemMsg struct {
	Item Item `json:"item"`
}

type MintItemMsg struct {
	Seed             uint64 `json:"seed"`
	Owner            string `json:"owner"`
	CollectionName   string `json:"collection_name"`
	CollectionSymbol string `json:"collection_symbol"`
	PriceType        *uint8 `json:"price_type,omitempty"`
	TokenURI         string `json:"token_uri,omitempty"`
	TokenID          string `json:"token_id,omitempty"`
}

type MintItemByNameMsg struct {
	Name             string `json:"name"`
	Owner            string `json:"owner"`
	CollectionName   string `json:"collection_name"`
	CollectionSymbol string `json:"collection_symbol"`
	PriceType        *uint8 `json:"price_type,omitempty"`
	TokenURI         string `json:"token_uri,omitempty"`
	TokenID          string `json:"token_id,omitempty"`
}

type TransferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

type BurnNftMsg struct {
	TokenID string `json:"token_id"`
}

type SendNftMsg struct {
	TokenID      string `json:"token_id"`
	ContractAddr string `json:"contract_addr"`
	Action       string `json:"action"`
}

type UpdateContractInfoMsg struct {
	Admins         []string           `json:"admins,omitempty"`
	Treasuries     []string           `json:"treasuries,omitempty"`
	Fees           []comm.Fee         `json:"fees,omitempty"`
	Contracts      []comm.ContractRef `json:"contracts,omitempty"`
	LogLastPayment *bool              `json:"log_last_payment,omitempty"`
}

// ExecuteMsg is a tagged union; exactly one action must be set.
type ExecuteMsg struct {
	CreateCollection   *CreateCollectionMsg   `json:"create_collection,omitempty"`
	UpdateCollection   *UpdateCollectionMsg   `json:"update_collection,omitempty"`
	RemoveCollection   *RemoveCollectionMsg   `json:"remove_collection,omitempty"`
	CreateItem         *CreateItemMsg         `json:"create_item,omitempty"`
	MintItem           *MintItemMsg           `json:"mint_item,omitempty"`
	MintItemByName     *MintItemByNameMsg     `json:"mint_item_by_name,omitempty"`
	TransferNft        *TransferNftMsg        `json:"transfer_nft,omitempty"`
	BurnNft            *BurnNftMsg            `json:"burn_nft,omitempty"`
	SendNft            *SendNftMsg            `json:"send_nft,omitempty"`
	UpdateContractInfo *UpdateContractInfoMsg `json:"update_contract_info,omitempty"`
}

type GetCollectionQuery struct {
	Owner  string `json:"owner"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type GetCollectionsQuery struct {
	Owner      string `json:"owner"`
	StartAfter string `json:"start_after,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
}

type GetAllCollectionsQuery struct {
	StartAfter string `json:"start_after,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
}

type GetActiveCollectionsQuery struct {
	Keyword  string `json:"keyword,omitempty"`
	Category string `json:"category,omitempty"`
	Start    *int   `json:"start,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

type GetItemQuery struct {
	Owner            string `json:"owner"`
	CollectionName   string `json:"collection_name"`
	CollectionSymbol string `json:"collection_symbol"`
	ItemName         string `json:"item_name"`
}

type GetItemsQuery struct {
	Owner            string `json:"owner"`
	CollectionName   string `json:"collection_name"`
	CollectionSymbol string `json:"collection_symbol"`
	StartAfter       string `json:"start_after,omitempty"`
	Limit            *int   `json:"limit,omitempty"`
}

type GetItemsCountQuery struct {
	Owner            string `json:"owner"`
	CollectionName   string `json:"collection_name"`
	CollectionSymbol string `json:"collection_symbol"`
}

type GetTokensQuery struct {
	Owner      string `json:"owner"`
	StartAfter string `json:"start_after,omitempty"`
	Limit      *int   `json:"limit,omitempty"`
}

type GetDeedInfoQuery struct {
	TokenID string `json:"token_id"`
}

// QueryMsg is a tagged union; exactly one request must be set.
type QueryMsg struct {
	GetCollection        *GetCollectionQuery        `json:"get_collection,omitempty"`
	GetCollections       *GetCollectionsQuery       `json:"get_collections,omitempty"`
	GetAllCollections    *GetAllCollectionsQuery    `json:"get_all_collections,omitempty"`
	GetActiveCollections *GetActiveCollectionsQuery `json:"get_active_collections,omitempty"`
	GetItem              *GetItemQuery              `json:"get_item,omitempty"`
	GetItems             *GetItemsQuery             `json:"get_items,omitempty"`
	GetItemsCount        *GetItemsCountQuery        `json:"get_items_count,omitempty"`
	GetContractInfo      *struct{}                  `json:"get_contract_info,omitempty"`
	GetTokens            *GetTokensQuery            `json:"get_tokens,omitempty"`
	GetDeedInfo          *GetDeedInfoQuery          `json:"get_deed_info,omitempty"`
}

type CollectionResponse struct {
	Collection *Collection `json:"collection"`
}

type CollectionsResponse struct {
	Collections []*Collection `json:"collections"`
}

type ActiveCollectionsResponse struct {
	Collections []*Collection `json:"collections"`
	Total       int           `json:"total"`
}

type ItemResponse struct {
	Item *Item `json:"item"`
}

type ItemsResponse struct {
	Items []*Item `json:"items"`
}

type ItemCountResponse struct {
	Count int `json:"count"`
}

type ContractInfoResponse struct {
	Info *comm.ContractInfo `json:"info"`
}

type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type DeedResponse struct {
	Deed *nft.Deed `json:"deed"`
}
