// storeapi/catalog.go
package storeapi

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductQuery narrows a product listing. Zero values are omitted from the
// request.
type ProductQuery struct {
	Search   string
	Category string // category slug
	Brand    string // brand slug
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
	Ordering string // e.g. "price", "-created_at"
	Page     int
}

func (q ProductQuery) toParams() map[string]any {
	params := map[string]any{}
	if q.Search != "" {
		params["search"] = q.Search
	}
	if q.Category != "" {
		params["category"] = q.Category
	}
	if q.Brand != "" {
		params["brand"] = q.Brand
	}
	if q.MinPrice != nil {
		params["min_price"] = q.MinPrice.String()
	}
	if q.MaxPrice != nil {
		params["max_price"] = q.MaxPrice.String()
	}
	if q.InStock {
		params["in_stock"] = true
	}
	if q.Ordering != "" {
		params["ordering"] = q.Ordering
	}
	if q.Page > 0 {
		params["page"] = q.Page
	}
	return params
}

// Products lists catalog entries matching the query.
func (c *Client) Products(ctx context.Context, query ProductQuery) (*Page[Product], error) {
	return decode[Page[Product]](c.http.Get(ctx, "base/products/", query.toParams()))
}

// Product fetches one catalog entry by slug.
func (c *Client) Product(ctx context.Context, slug string) (*Product, error) {
	return decode[Product](c.http.Get(ctx, fmt.Sprintf("base/products/%s/", slug), nil))
}

// Categories lists product categories.
func (c *Client) Categories(ctx context.Context, page int) (*Page[Category], error) {
	return decode[Page[Category]](c.http.Get(ctx, "base/categories/", pageParams(page)))
}

// Brands lists product brands.
func (c *Client) Brands(ctx context.Context, page int) (*Page[Brand], error) {
	return decode[Page[Brand]](c.http.Get(ctx, "base/brands/", pageParams(page)))
}

// ProductReviews lists the reviews of one product.
func (c *Client) ProductReviews(ctx context.Context, slug string, page int) (*Page[Review], error) {
	return decode[Page[Review]](c.http.Get(ctx, fmt.Sprintf("base/products/%s/reviews/", slug), pageParams(page)))
}

func pageParams(page int) map[string]any {
	if page <= 0 {
		return nil
	}
	return map[string]any{"page": page}
}
