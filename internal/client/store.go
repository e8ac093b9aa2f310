package client

import (
	"context"

	"github.com/xenking/snapbuy-client/internal/domain/store"
)

// Store fetches the storefront profile.
func (c *Client) Store(ctx context.Context) (*store.Store, error) {
	var s store.Store
	if err := c.cachedJSON(ctx, "store", "/store", nil, &s, ""); err != nil {
		return nil, err
	}
	return &s, nil
}

// Vars fetches the free-form storefront variables.
func (c *Client) Vars(ctx context.Context) (map[string]any, error) {
	var vars map[string]any
	if err := c.cachedJSON(ctx, "vars", "/vars", nil, &vars, ""); err != nil {
		return nil, err
	}
	return vars, nil
}

// Reviews lists customer reviews, paginated.
func (c *Client) Reviews(ctx context.Context, q PageQuery) ([]store.Review, error) {
	var reviews []store.Review
	if err := c.cachedJSON(ctx, q.cacheKey("reviews"), "/reviews/list", q.body(), &reviews, ""); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a new review on behalf of the session owner and
// returns the identifier assigned by the remote. Writes are never cached.
func (c *Client) CreateReview(ctx context.Context, r store.Review, token string) (string, error) {
	var resp struct {
		ReviewID string `json:"reviewId"`
	}
	if err := c.callJSON(ctx, "/reviews", r, &resp, token); err != nil {
		return "", err
	}
	return resp.ReviewID, nil
}
