package market

import (
	"encoding/json"
	"time"

	"github.com/pixory/pixory/nft"
)

const (
	LinkTypeImage        uint8 = 1
	LinkTypeExternalLink uint8 = 2
	LinkTypeVideo        uint8 = 3
	LinkTypeAnimation    uint8 = 4
)

type Link struct {
	LinkType uint8  `json:"link_type"`
	Value    string `json:"value"`
}

// Item is a staged, not yet minted token template. The collection name and
// symbol are denormalized so an item row is self-describing.
type Item struct {
	CollectionOwner  string      `json:"collection_owner"`
	CollectionName   string      `json:"collection_name"`
	CollectionSymbol string      `json:"collection_symbol"`
	Name             string      `json:"name"`
	Description      string      `json:"description,omitempty"`
	Links            []Link      `json:"links"`
	Traits           []nft.Trait `json:"traits"`
	BackgroundColor  string      `json:"background_color,omitempty"`
	DateCreated      time.Time   `json:"date_created"`
	DateUpdated      time.Time   `json:"date_updated"`
}

func (i *Item) linkValue(linkType uint8) string {
	for _, l := range i.Links {
		if l.LinkType == linkType {
			return l.Value
		}
	}
	return ""
}

func (i *Item) ImageLink() string     { return i.linkValue(LinkTypeImage) }
func (i *Item) ExternalLink() string  { return i.linkValue(LinkTypeExternalLink) }
func (i *Item) VideoLink() string     { return i.linkValue(LinkTypeVideo) }
func (i *Item) AnimationLink() string { return i.linkValue(LinkTypeAnimation) }

type collectionInfo struct {
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Category  string    `json:"category,omitempty"`
	Royalties []Royalty `json:"royalties,omitempty"`
}

// CollectionInfoTraits extends the item traits with one trait embedding the
// owning collection's identity, category and royalties, serialized for
// on-chain discoverability of the minted deed's provenance.
func (i *Item) CollectionInfoTraits(c *Collection) []nft.Trait {
	info := collectionInfo{
		Owner:     c.Owner,
		Name:      c.Name,
		Symbol:    c.Symbol,
		Category:  c.Category(),
		Royalties: c.Royalties,
	}
	val, err := json.Marshal(info)
	if err != nil {
		panic(err)
	}
	traits := make([]nft.Trait, 0, len(i.Traits)+1)
	traits = append(traits, i.Traits...)
	traits = append(traits, nft.Trait{
		TraitType: "collection-info",
		Value:     string(val),
	})
	return traits
}

// Metadata builds the deed extension from the item's links, traits and
// description.
func (i *Item) Metadata(c *Collection) nft.Metadata {
	return nft.Metadata{
		Name:            i.Name,
		Description:     i.Description,
		Image:           i.ImageLink(),
		ExternalURL:     i.ExternalLink(),
		YoutubeURL:      i.VideoLink(),
		AnimationURL:    i.AnimationLink(),
		BackgroundColor: i.BackgroundColor,
		Attributes:      i.CollectionInfoTraits(c),
	}
}
