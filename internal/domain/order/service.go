package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
)

// Sentinel errors for draft validation.
var (
	ErrEmptyDraft     = errors.New("order draft has no items")
	ErrMissingContact = errors.New("client contact details required")
)

// InvalidCountError indicates a draft line has a non-positive count.
type InvalidCountError struct {
	ID string
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("count must be greater than 0 for %s", e.ID)
}

// Draft is an in-flight order aggregate built client-side. It is submitted
// as one unit and not persisted beyond the request lifecycle.
type Draft struct {
	Products        map[string]int `json:"products,omitempty"`
	Packs           map[string]int `json:"packs,omitempty"`
	Contact         Contact        `json:"client"`
	Place           *Place         `json:"place,omitempty"`
	DeliveryPriceID string         `json:"deliveryPriceId,omitempty"`
	Note            string         `json:"note,omitempty"`
	MetaData        map[string]any `json:"metaData,omitempty"`
}

// Validate checks the draft client-side so invalid orders never reach the
// network.
func (d *Draft) Validate() error {
	if len(d.Products) == 0 && len(d.Packs) == 0 {
		return ErrEmptyDraft
	}
	for id, count := range d.Products {
		if count <= 0 {
			return &InvalidCountError{ID: id}
		}
	}
	for id, count := range d.Packs {
		if count <= 0 {
			return &InvalidCountError{ID: id}
		}
	}
	if d.Contact.Firstname == "" || d.Contact.Lastname == "" || d.Contact.Phone == "" {
		return ErrMissingContact
	}
	return nil
}

// API is the slice of the gateway client the order service needs.
type API interface {
	CreateOrder(ctx context.Context, req CreateRequest, token string) (*CreateResult, error)
}

// Service validates order drafts and submits them through the gateway
// client. It never computes or overrides the charged total; pricing is
// authoritative on the remote side.
type Service struct {
	api API
}

// NewService creates an order Service backed by the given gateway client.
func NewService(api API) *Service {
	return &Service{api: api}
}

// Submit validates the draft, builds the wire payload, and issues exactly
// one create-order call. The returned order carries the tracking id
// unchanged from the remote response.
func (s *Service) Submit(ctx context.Context, d Draft, token string) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	res, err := s.api.CreateOrder(ctx, CreateRequest{
		Products:        countMap(d.Products),
		Packs:           countMap(d.Packs),
		Client:          d.Contact,
		MetaData:        d.MetaData,
		Place:           d.Place,
		DeliveryPriceID: d.DeliveryPriceID,
		Note:            d.Note,
	}, token)
	if err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return &res.Order, nil
}

// countMap converts draft counts to the wire shape. The result is never nil:
// the payload always carries both the products and packs objects.
func countMap(counts map[string]int) map[string]Count {
	out := make(map[string]Count, len(counts))
	for id, count := range counts {
		out[id] = Count{Count: count}
	}
	return out
}
