// Package delivery holds shipping methods and their region-specific costs,
// fetched as two related remote resources.
package delivery

import (
	"context"

	"github.com/shopspring/decimal"
)

// Option is a shipping method offered by the store.
type Option struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	Price       decimal.Decimal `json:"price,omitempty"`
	Enabled     bool            `json:"enabled,omitempty"`
}

// Price is the cost of a delivery option for one region.
type Price struct {
	ID               string          `json:"id,omitempty"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	DeliveryOptionID string          `json:"deliveryOptionId"`
}

// PriceLister is the slice of the gateway client the delivery service needs.
type PriceLister interface {
	DeliveryPrices(ctx context.Context, optionID string) ([]Price, error)
}
