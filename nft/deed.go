package nft

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/crypto"
)

type Trait struct {
	DisplayType string `json:"display_type,omitempty"`
	TraitType   string `json:"trait_type"`
	Value       string `json:"value"`
}

// Metadata follows the OpenSea metadata standard so minted deeds are
// renderable by generic marketplaces.
type Metadata struct {
	Image           string  `json:"image,omitempty"`
	ImageData       string  `json:"image_data,omitempty"`
	ExternalURL     string  `json:"external_url,omitempty"`
	Description     string  `json:"description,omitempty"`
	Name            string  `json:"name,omitempty"`
	Attributes      []Trait `json:"attributes,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty"`
	AnimationURL    string  `json:"animation_url,omitempty"`
	YoutubeURL      string  `json:"youtube_url,omitempty"`
}

// Deed is a minted, ownable token.
type Deed struct {
	TokenID   string    `json:"token_id"`
	Owner     string    `json:"owner"`
	TokenURI  string    `json:"token_uri,omitempty"`
	Extension Metadata  `json:"extension"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenID derives a deterministic token id from the item identity, used
// when the caller does not supply one.
func TokenID(itemName, collectionOwner, collectionName, collectionSymbol string) string {
	h := crypto.NewHash([]byte(itemName + ":" + collectionOwner + ":" + collectionName + ":" + collectionSymbol))
	return fmt.Sprintf("Nft%x", h[:8])
}
