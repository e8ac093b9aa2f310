package order

import "github.com/shopspring/decimal"

// Status values reported by the remote service for an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivery   Status = "delivery"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusDone       Status = "done"
)

// Contact is the buyer's contact details attached to an order.
type Contact struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
}

// Place is the delivery destination of an order.
type Place struct {
	Address string `json:"address"`
	Wilaya  string `json:"wilaya"`
}

// Line is a priced line item as reported by the remote service.
type Line struct {
	Count int             `json:"count"`
	Price decimal.Decimal `json:"price"`
}

// Count wraps a line-item quantity for the create-order payload, which
// carries counts only; prices are resolved server-side.
type Count struct {
	Count int `json:"count"`
}

// Order is an order as returned by the remote service. The id is the
// tracking identifier surfaced to the buyer.
type Order struct {
	ID              string          `json:"id,omitempty"`
	Status          Status          `json:"status,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice,omitempty"`
	DeliveryPriceID string          `json:"deliveryPriceId,omitempty"`
	DeliveryPrice   decimal.Decimal `json:"deliveryPrice,omitempty"`
	Customer        string          `json:"customer,omitempty"`
	Client          *Contact        `json:"client,omitempty"`
	Products        map[string]Line `json:"products,omitempty"`
	Packs           map[string]Line `json:"packs,omitempty"`
	Place           *Place          `json:"place,omitempty"`
	Note            string          `json:"note,omitempty"`
	MetaData        map[string]any  `json:"metaData,omitempty"`
	CreatedAt       int64           `json:"createdAt,omitempty"`
}

// CreateRequest is the wire payload of the create-order endpoint.
type CreateRequest struct {
	Products        map[string]Count `json:"products"`
	Packs           map[string]Count `json:"packs"`
	Client          Contact          `json:"client"`
	MetaData        map[string]any   `json:"metaData,omitempty"`
	Place           *Place           `json:"place,omitempty"`
	DeliveryPriceID string           `json:"deliveryPriceId,omitempty"`
	Note            string           `json:"note,omitempty"`
}

// CreateResult is the create-order response.
type CreateResult struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}
