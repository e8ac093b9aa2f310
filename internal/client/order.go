package client

import (
	"context"

	"github.com/xenking/snapbuy-client/internal/domain/order"
)

// Order endpoints are never cached: order state changes server-side on
// fulfillment progress and a stale read would misreport it.

// Orders lists the orders belonging to the session owner.
func (c *Client) Orders(ctx context.Context, token string) ([]order.Order, error) {
	var orders []order.Order
	if err := c.callJSON(ctx, "/orders", nil, &orders, token); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order fetches one order by id.
func (c *Client) Order(ctx context.Context, id, token string) (*order.Order, error) {
	var o order.Order
	body := map[string]string{"orderId": id}
	if err := c.callJSON(ctx, "/orders/"+id, body, &o, token); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder submits a new order. The returned order carries the
// server-assigned id and prices; nothing is recomputed client-side.
func (c *Client) CreateOrder(ctx context.Context, req order.CreateRequest, token string) (*order.CreateResult, error) {
	var res order.CreateResult
	if err := c.callJSON(ctx, "/create-order", req, &res, token); err != nil {
		return nil, err
	}
	return &res, nil
}
