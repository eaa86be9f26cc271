package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Deliverer sends one serialized payload to one endpoint.
type Deliverer interface {
	Deliver(ctx context.Context, url string, body []byte) error
}

// WebhookDeliverer POSTs the payload as JSON. Any non-2xx answer is a failed delivery.
type WebhookDeliverer struct {
	client *http.Client
}

// NewWebhookDeliverer bounds every request by timeout. A zero timeout leaves the
// bound to the caller's context.
func NewWebhookDeliverer(timeout time.Duration) *WebhookDeliverer {
	return &WebhookDeliverer{client: &http.Client{Timeout: timeout}}
}

func (d *WebhookDeliverer) Deliver(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", uuid.NewString())

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("subscriber answered %d", resp.StatusCode)
	}
	return nil
}
