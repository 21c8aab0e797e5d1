// storeapi/orders.go
package storeapi

import (
	"context"
	"fmt"
)

// CheckoutRequest places an order from the current cart.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	BillingAddress  string `json:"billing_address,omitempty"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes,omitempty"`
}

// Checkout converts the cart into an order.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	return decode[Order](c.http.Post(ctx, "base/checkout/", req))
}

// Orders lists the account's orders, newest first.
func (c *Client) Orders(ctx context.Context, page int) (*Page[Order], error) {
	return decode[Page[Order]](c.http.Get(ctx, "base/orders/", pageParams(page)))
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, orderID string) (*Order, error) {
	return decode[Order](c.http.Get(ctx, fmt.Sprintf("base/orders/%s/", orderID), nil))
}

// OrderStatus fetches just the status of an order.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (string, error) {
	out, err := decode[struct {
		Status string `json:"status"`
	}](c.http.Get(ctx, fmt.Sprintf("base/orders/%s/status/", orderID), nil))
	if err != nil {
		return "", err
	}
	return out.Status, nil
}

// CancelOrder cancels an order that has not shipped yet.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (*Order, error) {
	return decode[Order](c.http.Post(ctx, fmt.Sprintf("base/orders/%s/cancel/", orderID), nil))
}

// PaymentRequest pays for an order.
type PaymentRequest struct {
	OrderID string `json:"order_id"`
	Method  string `json:"method"`
	Token   string `json:"token,omitempty"` // gateway-issued payment token
}

// ProcessPayment submits a payment for an order.
func (c *Client) ProcessPayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	return decode[Payment](c.http.Post(ctx, "base/payment/process/", req))
}

// PaymentStatus fetches the state of a payment attempt.
func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (*Payment, error) {
	return decode[Payment](c.http.Get(ctx, fmt.Sprintf("base/payment/%s/status/", paymentID), nil))
}
