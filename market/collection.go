package market

import (
	"time"

	"github.com/pixory/pixory/comm"
)

const (
	CollectionStatusDraft       uint8 = 0
	CollectionStatusActivated   uint8 = 1
	CollectionStatusDeactivated uint8 = 2
)

const (
	PriceTypeStandard  uint8 = 1
	PriceTypeWhitelist uint8 = 2
	PriceTypeOG        uint8 = 3
)

const (
	AttrAllowedMintItemByName = "ALLOWED_MINT_ITEMBY_NAME"
	AttrCategory              = "CATEGORY"
)

// CollectionID concatenates name and symbol into the identity key a
// collection is unique by, independent of its owner.
func CollectionID(name, symbol string) string {
	return name + "-" + symbol
}

type Treasury struct {
	Wallet     string `json:"wallet"`
	Percentage uint8  `json:"percentage"`
	Name       string `json:"name,omitempty"`
}

type Royalty struct {
	Wallet     string `json:"wallet"`
	Percentage uint8  `json:"percentage"`
	Name       string `json:"name,omitempty"`
}

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type PriceType struct {
	PriceType uint8      `json:"price_type"`
	Value     comm.Coin  `json:"value"`
	DateStart *time.Time `json:"date_start,omitempty"`
	DateEnd   *time.Time `json:"date_end,omitempty"`
}

type Collection struct {
	Owner       string      `json:"owner"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Description string      `json:"description,omitempty"`
	Treasuries  []Treasury  `json:"treasuries,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Prices      []PriceType `json:"prices,omitempty"`
	Royalties   []Royalty   `json:"royalties,omitempty"`
	Status      uint8       `json:"status"`
	DateCreated time.Time   `json:"date_created"`
	DateUpdated time.Time   `json:"date_updated"`
}

func (c *Collection) ID() string {
	return CollectionID(c.Name, c.Symbol)
}

// TreasuryList returns the configured treasuries, defaulting to the whole
// amount going to the collection owner when none are configured.
func (c *Collection) TreasuryList() []Treasury {
	if len(c.Treasuries) > 0 {
		return c.Treasuries
	}
	return []Treasury{{Wallet: c.Owner, Percentage: 100}}
}

func (c *Collection) TreasuryPayments() []comm.PaymentByPercentage {
	treasuries := c.TreasuryList()
	payments := make([]comm.PaymentByPercentage, len(treasuries))
	for i, t := range treasuries {
		payments[i] = comm.PaymentByPercentage{Wallet: t.Wallet, Percentage: t.Percentage}
	}
	return payments
}

func (c *Collection) PriceByType(priceType uint8) *comm.Coin {
	for _, p := range c.Prices {
		if p.PriceType == priceType {
			v := p.Value
			return &v
		}
	}
	return nil
}

func (c *Collection) attribute(name string) string {
	for _, a := range c.Attributes {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func (c *Collection) IsMintByNameAllowed() bool {
	return c.attribute(AttrAllowedMintItemByName) == "true"
}

func (c *Collection) Category() string {
	return c.attribute(AttrCategory)
}
