package market

import (
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 20
)

func clampLimit(limit *int) int {
	l := DefaultLimit
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if l > MaxLimit {
		l = MaxLimit
	}
	return l
}

func (c *Contract) getCollection(s Store, q *GetCollectionQuery) (*CollectionResponse, error) {
	collection, err := s.ReadCollection(q.Owner, CollectionID(q.Name, q.Symbol))
	if err != nil {
		return nil, err
	}
	return &CollectionResponse{Collection: collection}, nil
}

func (c *Contract) getCollections(s Store, q *GetCollectionsQuery) (*CollectionsResponse, error) {
	collections, err := s.ListCollectionsByOwner(q.Owner, q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &CollectionsResponse{Collections: collections}, nil
}

func (c *Contract) getAllCollections(s Store, q *GetAllCollectionsQuery) (*CollectionsResponse, error) {
	collections, err := s.ListAllCollections(q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &CollectionsResponse{Collections: collections}, nil
}

func containsKeyword(c *Collection, keyword string) bool {
	return strings.Contains(c.Name, keyword) || strings.Contains(c.Description, keyword)
}

// getActiveCollections pages through activated collections matching the
// optional keyword and category filters. Total counts every activated
// collection regardless of the filters, so clients can show the size of
// the marketplace next to a filtered page.
func (c *Contract) getActiveCollections(s Store, q *GetActiveCollectionsQuery) (*ActiveCollectionsResponse, error) {
	all, err := s.ScanCollections()
	if err != nil {
		return nil, err
	}

	limit := clampLimit(q.Limit)
	skip := 0
	if q.Start != nil {
		skip = *q.Start
	}

	total := 0
	matched := make([]*Collection, 0, limit)
	for _, coll := range all {
		if coll.Status != CollectionStatusActivated {
			continue
		}
		total++
		if q.Keyword != "" && !containsKeyword(coll, q.Keyword) {
			continue
		}
		if q.Category != "" && coll.Category() != q.Category {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		if len(matched) < limit {
			matched = append(matched, coll)
		}
	}
	return &ActiveCollectionsResponse{Collections: matched, Total: total}, nil
}

func (c *Contract) getItem(s Store, q *GetItemQuery) (*ItemResponse, error) {
	item, err := s.ReadItem(q.Owner, CollectionID(q.CollectionName, q.CollectionSymbol), q.ItemName)
	if err != nil {
		return nil, err
	}
	return &ItemResponse{Item: item}, nil
}

func (c *Contract) getItems(s Store, q *GetItemsQuery) (*ItemsResponse, error) {
	items, err := s.ListItems(q.Owner, CollectionID(q.CollectionName, q.CollectionSymbol), q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &ItemsResponse{Items: items}, nil
}

func (c *Contract) getItemsCount(s Store, q *GetItemsCountQuery) (*ItemCountResponse, error) {
	count, err := s.CountItems(q.Owner, CollectionID(q.CollectionName, q.CollectionSymbol))
	if err != nil {
		return nil, err
	}
	return &ItemCountResponse{Count: count}, nil
}

func (c *Contract) getContractInfo(s Store) (*ContractInfoResponse, error) {
	info, err := s.ReadContractInfo()
	if err != nil {
		return nil, err
	}
	return &ContractInfoResponse{Info: info}, nil
}

func (c *Contract) getTokens(s Store, q *GetTokensQuery) (*TokensResponse, error) {
	tokens, err := c.minter.TokensByOwner(s, q.Owner, q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &TokensResponse{Tokens: tokens}, nil
}

func (c *Contract) getDeedInfo(s Store, q *GetDeedInfoQuery) (*DeedResponse, error) {
	deed, err := c.minter.DeedInfo(s, q.TokenID)
	if err != nil {
		return nil, err
	}
	return &DeedResponse{Deed: deed}, nil
}
