package delivery

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

// Service fetches delivery price tables through the gateway client.
type Service struct {
	api PriceLister
}

// NewService creates a delivery Service backed by the given gateway client.
func NewService(api PriceLister) *Service {
	return &Service{api: api}
}

// PricesByOption fetches the price table for every option concurrently and
// joins the results into a map keyed by option id. Callers must not depend
// on completion order, only on the fully populated map. Any single failure
// fails the whole join.
func (s *Service) PricesByOption(ctx context.Context, opts []Option) (map[string][]Price, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	out := make(map[string][]Price, len(opts))

	for _, opt := range opts {
		opt := opt
		g.Go(func() error {
			prices, err := s.api.DeliveryPrices(ctx, opt.ID)
			if err != nil {
				return errors.Wrapf(err, "delivery prices for option %s", opt.ID)
			}
			mu.Lock()
			out[opt.ID] = prices
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
