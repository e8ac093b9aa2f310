package client

import (
	"context"

	"github.com/xenking/snapbuy-client/internal/domain/catalog"
	"github.com/xenking/snapbuy-client/internal/domain/product"
)

// Collections lists all product collections.
func (c *Client) Collections(ctx context.Context) ([]catalog.Collection, error) {
	var cols []catalog.Collection
	if err := c.cachedJSON(ctx, "collections", "/collections", nil, &cols, ""); err != nil {
		return nil, err
	}
	return cols, nil
}

// Collection fetches one collection by id.
func (c *Client) Collection(ctx context.Context, id string) (*catalog.Collection, error) {
	var col catalog.Collection
	body := map[string]string{"collectionId": id}
	if err := c.cachedJSON(ctx, "collection_"+id, "/collections/"+id, body, &col, ""); err != nil {
		return nil, err
	}
	return &col, nil
}

// Products lists products, paginated.
func (c *Client) Products(ctx context.Context, q PageQuery) ([]product.Product, error) {
	var products []product.Product
	if err := c.cachedJSON(ctx, q.cacheKey("products"), "/products", q.body(), &products, ""); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches one product by id.
func (c *Client) Product(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	body := map[string]string{"prodId": id}
	if err := c.cachedJSON(ctx, "product_"+id, "/products/"+id, body, &p, ""); err != nil {
		return nil, err
	}
	return &p, nil
}

// Brands lists all brands.
func (c *Client) Brands(ctx context.Context) ([]catalog.Brand, error) {
	var brands []catalog.Brand
	if err := c.cachedJSON(ctx, "brands", "/brands", nil, &brands, ""); err != nil {
		return nil, err
	}
	return brands, nil
}

// Brand fetches one brand by id.
func (c *Client) Brand(ctx context.Context, id string) (*catalog.Brand, error) {
	var b catalog.Brand
	body := map[string]string{"brandId": id}
	if err := c.cachedJSON(ctx, "brand_"+id, "/brands/"+id, body, &b, ""); err != nil {
		return nil, err
	}
	return &b, nil
}

// Packs lists the product bundles offered by the store.
func (c *Client) Packs(ctx context.Context) ([]catalog.Pack, error) {
	var packs []catalog.Pack
	if err := c.cachedJSON(ctx, "packs", "/packs", nil, &packs, ""); err != nil {
		return nil, err
	}
	return packs, nil
}
