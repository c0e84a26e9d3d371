package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
)

// WebhookSender relays messages as JSON to a mail relay service.
type WebhookSender struct {
	client *http.Client
	url    string
	logger *zap.Logger
}

// NewWebhookSender builds a relay sender. When client is nil an ID-token
// authenticated client is used, falling back to a plain client when no
// Google credentials are available.
func NewWebhookSender(ctx context.Context, client *http.Client, url string, logger *zap.Logger) (*WebhookSender, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, fmt.Errorf("notify: webhook url must not be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if client == nil {
		idc, err := idtoken.NewClient(ctx, url)
		if err != nil {
			logger.Warn("mail relay without id token", zap.Error(err))
			client = &http.Client{Timeout: 10 * time.Second}
		} else {
			client = idc
		}
	}
	return &WebhookSender{client: client, url: url, logger: logger}, nil
}

// Send posts the message to the relay.
func (s *WebhookSender) Send(ctx context.Context, msg EmailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("notify: marshal relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: relay returned status %d: %s", resp.StatusCode, relayError(resp.Body))
	}
	return nil
}

func relayError(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

var _ Sender = (*WebhookSender)(nil)
