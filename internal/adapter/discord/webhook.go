package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zentra-notify/internal/domain/model"
	"zentra-notify/internal/domain/ports"
)

const maxResponseBody = 64 << 10

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	userAgent  string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL, userAgent string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the notification to Discord. Statuses other than 200 and 204
// are reported as *model.RejectionError.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	body, err := Encode(notification)
	if err != nil {
		return err
	}
	w.logger.Debug(ctx, "encoded discord payload", "bytes", len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.userAgent != "" {
		req.Header.Set("User-Agent", w.userAgent)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		w.logger.Info(ctx, "notification sent to discord", "status", resp.StatusCode)
		return nil
	default:
		return &model.RejectionError{
			StatusCode: resp.StatusCode,
			Body:       readBody(resp.Body),
		}
	}
}

// readBody returns whatever diagnostic text can be recovered from a response
// body. A failed read yields the error text instead of an error.
func readBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxResponseBody))
	if err != nil {
		if len(data) > 0 {
			return strings.TrimSpace(string(data)) + " (" + err.Error() + ")"
		}
		return err.Error()
	}
	return strings.TrimSpace(string(data))
}
