// storeapi/reviews.go
package storeapi

import (
	"context"
	"fmt"
)

// ReviewRequest creates or updates a product review.
type ReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// CreateReview posts a review for a purchased product.
func (c *Client) CreateReview(ctx context.Context, req ReviewRequest) (*Review, error) {
	return decode[Review](c.http.Post(ctx, "base/reviews/", req))
}

// UpdateReview edits the account's own review.
func (c *Client) UpdateReview(ctx context.Context, reviewID string, req ReviewRequest) (*Review, error) {
	return decode[Review](c.http.Put(ctx, fmt.Sprintf("base/reviews/%s/", reviewID), req))
}

// DeleteReview removes the account's own review.
func (c *Client) DeleteReview(ctx context.Context, reviewID string) error {
	_, err := c.http.Delete(ctx, fmt.Sprintf("base/reviews/%s/", reviewID), nil)
	return err
}
