// Package order talks to the external order service.
package order

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	circuit "github.com/rubyist/circuitbreaker"
)

var ErrBreakerOpen = errs.New("order service unavailable: circuit open")

type cancelRequest struct {
	Reason string `json:"reason"`
	Refund bool   `json:"refund"`
}

// Client cancels and refunds orders. Transport errors and 5xx responses count
// against a threshold breaker.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	breaker *circuit.Breaker
	metrics *metrics.Booking
}

func NewClient(cfg config.OrderConfig, m *metrics.Booking) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout}, m)
}

func NewClientWithHTTP(cfg config.OrderConfig, hc *http.Client, m *metrics.Booking) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    hc,
		breaker: circuit.NewThresholdBreaker(max(cfg.BreakerThreshold, 1)),
		metrics: m,
	}
}

// CancelOrder is idempotent on the order side: cancelling an already
// cancelled order answers 409, which is treated as success.
func (c *Client) CancelOrder(ctx context.Context, orderID uuid.UUID, reason string) error {
	body, err := json.Marshal(cancelRequest{Reason: reason, Refund: true})
	if err != nil {
		return errs.Wrap(err, "failed to encode cancel request")
	}

	start := time.Now()
	defer func() { c.metrics.OrderCallLatency.Observe(time.Since(start).Seconds()) }()

	var permanent error
	err = c.breaker.CallContext(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/orders/%s/cancel", c.baseURL, orderID), strings.NewReader(string(body)))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode < 300, resp.StatusCode == http.StatusConflict:
			return nil
		case resp.StatusCode == http.StatusNotFound:
			permanent = errs.NotFoundf("order %s not found", orderID)
			return nil
		case resp.StatusCode < 500:
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			permanent = errs.InvalidDataf("order %s cancel rejected: %d %s", orderID, resp.StatusCode, strings.TrimSpace(string(msg)))
			return nil
		default:
			return errs.Newf("order service answered %d", resp.StatusCode)
		}
	}, c.timeout)
	if err != nil {
		if errs.Is(err, circuit.ErrBreakerOpen) {
			return errs.Mark(errs.Wrapf(err, "cancel order %s", orderID), ErrBreakerOpen)
		}
		return errs.Wrapf(err, "failed to cancel order %s", orderID)
	}
	return permanent
}
