package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sahaaya.backend/internal/domain/entities"
)

// Config holds the payment gateway credentials and endpoint.
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// Client talks to the Razorpay-compatible REST API. All calls use basic
// auth with the key pair and return the decoded response body.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a gateway client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// KeyID returns the public key id the checkout widget needs.
func (c *Client) KeyID() string {
	return c.cfg.KeyID
}

// Secret returns the signing secret for verification.
func (c *Client) Secret() string {
	return c.cfg.KeySecret
}

// Order is the gateway's order object.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// CreateOrder registers an order at the gateway before any money moves.
// Amount is in the smallest currency unit.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]string) (*Order, error) {
	var order Order
	err := c.post(ctx, "/v1/orders", orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    notes,
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Plan is the gateway's billing plan object.
type Plan struct {
	ID string `json:"id"`
}

type planRequest struct {
	Period   string   `json:"period"`
	Interval int      `json:"interval"`
	Item     planItem `json:"item"`
}

type planItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Subscription is the gateway's subscription object. ShortURL is where
// the donor authorizes the mandate.
type Subscription struct {
	ID       string `json:"id"`
	PlanID   string `json:"plan_id"`
	Status   string `json:"status"`
	ShortURL string `json:"short_url"`
}

type subscriptionRequest struct {
	PlanID     string `json:"plan_id"`
	TotalCount int    `json:"total_count"`
}

// CreateSubscription provisions a billing plan for the cadence and opens
// a subscription against it. The gateway owns renewal charges from there.
func (c *Client) CreateSubscription(ctx context.Context, amount int64, currency string, frequency entities.SubscriptionFrequency) (*Subscription, error) {
	period, interval, cycles := planCadence(frequency)

	var plan Plan
	err := c.post(ctx, "/v1/plans", planRequest{
		Period:   period,
		Interval: interval,
		Item: planItem{
			Name:     fmt.Sprintf("Recurring donation (%s)", frequency),
			Amount:   amount,
			Currency: currency,
		},
	}, &plan)
	if err != nil {
		return nil, err
	}

	var sub Subscription
	err = c.post(ctx, "/v1/subscriptions", subscriptionRequest{
		PlanID:     plan.ID,
		TotalCount: cycles,
	}, &sub)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CancelSubscription cancels an active mandate at the gateway.
func (c *Client) CancelSubscription(ctx context.Context, gatewaySubscriptionID string) error {
	path := fmt.Sprintf("/v1/subscriptions/%s/cancel", gatewaySubscriptionID)
	return c.post(ctx, path, struct{}{}, &struct{}{})
}

// Refund is the gateway's refund object.
type Refund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type refundRequest struct {
	Amount int64 `json:"amount,omitempty"`
}

// CreateRefund refunds a captured payment, fully when amount is zero.
func (c *Client) CreateRefund(ctx context.Context, paymentID string, amount int64) (*Refund, error) {
	var refund Refund
	path := fmt.Sprintf("/v1/payments/%s/refund", paymentID)
	if err := c.post(ctx, path, refundRequest{Amount: amount}, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

// planCadence maps a donation frequency onto the gateway's billing
// period/interval pair and a ten-year cycle count.
func planCadence(frequency entities.SubscriptionFrequency) (string, int, int) {
	switch frequency {
	case entities.SubscriptionFrequencyQuarterly:
		return "monthly", 3, 40
	case entities.SubscriptionFrequencyYearly:
		return "yearly", 1, 10
	default:
		return "monthly", 1, 120
	}
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}
	return nil
}
