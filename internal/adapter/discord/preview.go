package discord

import (
	"context"
	"fmt"
	"io"

	"zentra-notify/internal/domain/model"
	"zentra-notify/internal/domain/ports"
)

// Preview writes the encoded payload instead of posting it.
type Preview struct {
	out    io.Writer
	logger ports.Logger
}

var _ ports.Notifier = (*Preview)(nil)

// NewPreview creates a dry-run notifier writing to out.
func NewPreview(out io.Writer, logger ports.Logger) *Preview {
	return &Preview{out: out, logger: logger}
}

// Send encodes the notification and prints it.
func (p *Preview) Send(ctx context.Context, notification model.Notification) error {
	body, err := Encode(notification)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.out, "%s\n", body); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	p.logger.Info(ctx, "dry run, payload not sent", "bytes", len(body))
	return nil
}
