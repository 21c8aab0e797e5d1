// storeapi/wishlist.go
package storeapi

import (
	"context"
	"fmt"
)

// Wishlist fetches the account's saved products.
func (c *Client) Wishlist(ctx context.Context) (*Wishlist, error) {
	return decode[Wishlist](c.http.Get(ctx, "base/wishlist/", nil))
}

// AddToWishlist saves a product.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (*Wishlist, error) {
	return decode[Wishlist](c.http.Post(ctx, "base/wishlist/add/", map[string]string{
		"product_id": productID,
	}))
}

// RemoveFromWishlist drops a saved product.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) (*Wishlist, error) {
	return decode[Wishlist](c.http.Delete(ctx, fmt.Sprintf("base/wishlist/remove/%s/", productID), nil))
}
