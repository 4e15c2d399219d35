package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OrderUpdateEvent is pushed to the bot process when an admin changes an
// order's status or payment status.
type OrderUpdateEvent struct {
	OrderCode     string `json:"order_code"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	TrackingCode  string `json:"tracking_code,omitempty"`
}

// BotWebhookNotifier delivers order updates to the bot's webhook server.
// Callers treat delivery as best effort; the admin update succeeds whether
// or not the bot is reachable.
type BotWebhookNotifier struct {
	url        string
	secret     string
	httpClient *http.Client
}

func NewBotWebhookNotifier(url, secret string) *BotWebhookNotifier {
	return &BotWebhookNotifier{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a webhook URL is configured.
func (n *BotWebhookNotifier) Enabled() bool {
	return n.url != ""
}

func (n *BotWebhookNotifier) NotifyOrderUpdate(ctx context.Context, event OrderUpdateEvent) error {
	if !n.Enabled() {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", n.secret)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call bot webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("bot webhook returned status %d", resp.StatusCode)
	}
	return nil
}
