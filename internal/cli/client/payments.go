package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetPayments lists payments
func (c *Client) GetPayments(ctx context.Context, query *Query) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/payments", query), nil)
}

// GetPayment returns one payment
func (c *Client) GetPayment(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/payments/%d", id), nil)
}

// ProcessRefund asks the backend to refund part or all of a payment
func (c *Client) ProcessRefund(ctx context.Context, paymentID int64, amount float64, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, fmt.Sprintf("/admin/payments/%d/refund", paymentID), Refund{
		Amount: amount,
		Reason: reason,
	})
}

// GetReviews lists reviews
func (c *Client) GetReviews(ctx context.Context, query *Query) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, withQuery("/admin/reviews", query), nil)
}

// GetReview returns one review
func (c *Client) GetReview(ctx context.Context, id int64) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, fmt.Sprintf("/admin/reviews/%d", id), nil)
}

// ModerateReview approves, rejects or hides a review
func (c *Client) ModerateReview(ctx context.Context, id int64, action ModerationAction, reason string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPatch, fmt.Sprintf("/admin/reviews/%d/moderate", id), Moderation{
		Action: action,
		Reason: reason,
	})
}
