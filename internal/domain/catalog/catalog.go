// Package catalog holds the browsable grouping resources of the store:
// collections, brands, and product packs.
package catalog

import "github.com/shopspring/decimal"

// Collection is a curated group of products.
type Collection struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Products  []string `json:"products,omitempty"`
	Photo     string   `json:"photo,omitempty"`
	CreatedAt int64    `json:"createdAt,omitempty"`
}

// Brand is a product manufacturer or label.
type Brand struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Photo       string `json:"photo,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}

// Pack is a bundle of products sold together at a single price.
type Pack struct {
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Price     decimal.Decimal `json:"price,omitempty"`
	Products  []PackItem      `json:"products,omitempty"`
	CreatedAt int64           `json:"createdAt,omitempty"`
}

// PackItem is one product line inside a pack.
type PackItem struct {
	ProductID string `json:"prodId"`
	Count     int    `json:"count"`
}
