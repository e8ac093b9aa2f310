package product

import "github.com/shopspring/decimal"

// Kind discriminates the two pricing shapes a product can carry.
type Kind string

const (
	// KindSingle products carry flat per-tier prices (client vs customer).
	KindSingle Kind = "single"
	// KindMultiple products carry quantity-tiered prices.
	KindMultiple Kind = "multiple"
)

// Product is a catalog item. Exactly one of Single or Multiple is populated,
// matching Type; the other pricing shape is undefined.
type Product struct {
	ID          string                   `json:"id,omitempty"`
	Name        string                   `json:"name,omitempty"`
	Description string                   `json:"description,omitempty"`
	BrandID     string                   `json:"brandId,omitempty"`
	Files       []File                   `json:"files,omitempty"`
	Quantity    int                      `json:"quantity,omitempty"`
	Available   bool                     `json:"available,omitempty"`
	Limited     bool                     `json:"limited,omitempty"`
	Type        Kind                     `json:"type,omitempty"`
	Single      *FlatPrices              `json:"single,omitempty"`
	Multiple    *TierPricing             `json:"multiple,omitempty"`
	MetaData    map[string]MetadataField `json:"metaData,omitempty"`
	CreatedAt   int64                    `json:"createdAt,omitempty"`
}

// File is a media attachment on a product, typically the gallery image set.
type File struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// FlatPrices holds the two account-tier prices of a single-priced product.
// Client is the guest/unapproved price; Customer applies only to accounts
// with accepted status.
type FlatPrices struct {
	Client   decimal.Decimal `json:"client"`
	Customer decimal.Decimal `json:"customer"`
}

// TierPricing holds the volume-discount table of a multiple-priced product.
type TierPricing struct {
	Prices []Breakpoint `json:"prices,omitempty"`
}

// Breakpoint binds a unit price to a minimum purchase quantity. A table
// never contains two breakpoints with the same quantity.
type Breakpoint struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// MetadataField is a typed custom attribute attached to a product.
type MetadataField struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}
