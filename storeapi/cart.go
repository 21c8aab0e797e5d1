// storeapi/cart.go
package storeapi

import (
	"context"
	"fmt"
)

// Cart fetches the account's active cart.
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	return decode[Cart](c.http.Get(ctx, "base/cart/", nil))
}

// AddToCart puts quantity units of a product (optionally a specific variant)
// into the cart and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, productID string, variantID *string, quantity int) (*Cart, error) {
	payload := map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	}
	if variantID != nil {
		payload["variant_id"] = *variantID
	}
	return decode[Cart](c.http.Post(ctx, "base/cart/add/", payload))
}

// UpdateCartItem changes the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*Cart, error) {
	return decode[Cart](c.http.Patch(ctx, fmt.Sprintf("base/cart/items/%s/", itemID), map[string]any{
		"quantity": quantity,
	}))
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) (*Cart, error) {
	return decode[Cart](c.http.Delete(ctx, fmt.Sprintf("base/cart/remove/%s/", itemID), nil))
}

// ClearCart empties the cart.
func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.http.Post(ctx, "base/cart/clear/", nil)
	return err
}

// ValidateCoupon checks a discount code without applying it.
func (c *Client) ValidateCoupon(ctx context.Context, code string) (*Coupon, error) {
	return decode[Coupon](c.http.Post(ctx, "base/coupons/validate/", map[string]string{"code": code}))
}

// ApplyCoupon attaches a discount code to the cart.
func (c *Client) ApplyCoupon(ctx context.Context, code string) (*Cart, error) {
	return decode[Cart](c.http.Post(ctx, "base/coupons/apply/", map[string]string{"code": code}))
}
