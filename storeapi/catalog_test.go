// storeapi/catalog_test.go
package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsDecodesPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/base/products/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 42,
			"next": "http://shop.example.com/api/base/products/?page=2",
			"previous": null,
			"results": [
				{
					"id": "p1",
					"name": "Trail Boot",
					"slug": "trail-boot",
					"price": "129.90",
					"discount_price": "99.90",
					"stock": 7,
					"is_available": true,
					"created_at": "2026-02-01T00:00:00Z"
				},
				{
					"id": "p2",
					"name": "City Sneaker",
					"slug": "city-sneaker",
					"price": "89.00",
					"discount_price": null,
					"stock": 0,
					"is_available": false,
					"created_at": "2026-03-10T00:00:00Z"
				}
			]
		}`))
	})

	api, _ := newTestAPI(t, mux)

	page, err := api.Products(context.Background(), ProductQuery{})
	require.NoError(t, err)

	assert.Equal(t, 42, page.Count)
	require.NotNil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 2)

	boot := page.Results[0]
	assert.Equal(t, "trail-boot", boot.Slug)
	assert.True(t, boot.Price.Equal(decimal.RequireFromString("129.90")))
	require.NotNil(t, boot.DiscountPrice)
	assert.True(t, boot.DiscountPrice.Equal(decimal.RequireFromString("99.90")))

	sneaker := page.Results[1]
	assert.Nil(t, sneaker.DiscountPrice)
	assert.False(t, sneaker.IsAvailable)
}

func TestProductQueryParams(t *testing.T) {
	queries := make(chan url.Values, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/base/products/", func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":0,"results":[]}`))
	})

	api, _ := newTestAPI(t, mux)

	minPrice := decimal.RequireFromString("10.00")
	_, err := api.Products(context.Background(), ProductQuery{
		Search:   "boot",
		Category: "shoes",
		MinPrice: &minPrice,
		InStock:  true,
		Ordering: "-created_at",
		Page:     3,
	})
	require.NoError(t, err)

	got := <-queries
	assert.Equal(t, "boot", got.Get("search"))
	assert.Equal(t, "shoes", got.Get("category"))
	assert.Equal(t, "10", got.Get("min_price"))
	assert.Equal(t, "true", got.Get("in_stock"))
	assert.Equal(t, "-created_at", got.Get("ordering"))
	assert.Equal(t, "3", got.Get("page"))
	assert.Empty(t, got.Get("brand"), "zero-valued filters are omitted")
	assert.Empty(t, got.Get("max_price"))
}

func TestProductBySlug(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/base/products/trail-boot/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "p1",
			"name": "Trail Boot",
			"slug": "trail-boot",
			"price": "129.90",
			"stock": 7,
			"is_available": true,
			"variants": [
				{"id": "v1", "name": "size", "value": "42", "price_adjustment": "0.00", "stock": 3}
			],
			"created_at": "2026-02-01T00:00:00Z"
		}`))
	})

	api, _ := newTestAPI(t, mux)

	product, err := api.Product(context.Background(), "trail-boot")
	require.NoError(t, err)
	assert.Equal(t, "Trail Boot", product.Name)
	require.Len(t, product.Variants, 1)
	assert.Equal(t, "42", product.Variants[0].Value)
}

func TestCategoriesPagination(t *testing.T) {
	queries := make(chan url.Values, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/base/categories/", func(w http.ResponseWriter, r *http.Request) {
		queries <- r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":"c1","name":"Shoes","slug":"shoes","parent":null}]}`))
	})

	api, _ := newTestAPI(t, mux)

	page, err := api.Categories(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Nil(t, page.Results[0].Parent)
	assert.Equal(t, "2", (<-queries).Get("page"))
}
