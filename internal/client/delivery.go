package client

import (
	"context"

	"github.com/xenking/snapbuy-client/internal/domain/delivery"
	"github.com/xenking/snapbuy-client/internal/domain/order"
)

var (
	_ order.API            = (*Client)(nil)
	_ delivery.PriceLister = (*Client)(nil)
)

// DeliveryOptions lists the delivery methods offered by the store.
func (c *Client) DeliveryOptions(ctx context.Context) ([]delivery.Option, error) {
	var opts []delivery.Option
	if err := c.cachedJSON(ctx, "delivery_options", "/delivery-options", nil, &opts, ""); err != nil {
		return nil, err
	}
	return opts, nil
}

// DeliveryPrices lists the per-destination prices of one delivery option.
func (c *Client) DeliveryPrices(ctx context.Context, optionID string) ([]delivery.Price, error) {
	var prices []delivery.Price
	body := map[string]string{"deliveryOptionId": optionID}
	if err := c.cachedJSON(ctx, "delivery_prices_"+optionID, "/delivery-prices", body, &prices, ""); err != nil {
		return nil, err
	}
	return prices, nil
}
