package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"zentra-notify/internal/domain/model"
	"zentra-notify/internal/domain/ports"
)

// TimestampLayout renders as MM/DD/YY, hh:mm AM/PM.
const TimestampLayout = "01/02/06, 03:04 PM"

const (
	embedTitle       = "📱 Test Discord Embed"
	embedDescription = "This is a test embed to verify Discord webhook integration."
	embedColor       = 0x5865F2 // Discord blurple
	authorName       = "Zentra App"
	authorIconURL    = "https://i.imgur.com/zPyOczX.png"
)

// NotificationSender builds the test embed, delivers it and reports the outcome.
type NotificationSender struct {
	notifier ports.Notifier
	reporter ports.Reporter
	clock    ports.Clock
	logger   ports.Logger
}

// NewNotificationSender constructs a NotificationSender use case.
func NewNotificationSender(
	notifier ports.Notifier,
	reporter ports.Reporter,
	clock ports.Clock,
	logger ports.Logger,
) *NotificationSender {
	return &NotificationSender{
		notifier: notifier,
		reporter: reporter,
		clock:    clock,
		logger:   logger,
	}
}

// Send performs one delivery attempt. It never returns an error: every
// failure is folded into the result.
func (s *NotificationSender) Send(ctx context.Context) model.SendResult {
	start := time.Now()
	deliveryID := uuid.NewString()
	stamp := FormatTimestamp(s.clock.Now())

	s.reporter.Stage("Sending test embed to Discord...")
	s.reporter.Stage("Time: " + stamp)
	s.logger.Info(ctx, "sending notification", "delivery_id", deliveryID)

	result := Classify(s.notifier.Send(ctx, BuildNotification(stamp)))
	if result.Success {
		s.reporter.Success("Successfully sent to Discord!")
		s.logger.Info(ctx, "notification delivered",
			"delivery_id", deliveryID,
			"duration", time.Since(start))
		return result
	}

	s.reporter.Failure(result.Detail)
	s.logger.Error(ctx, "notification failed",
		"delivery_id", deliveryID,
		"status", result.StatusCode,
		"detail", result.Detail)
	return result
}

// FormatTimestamp renders t for the embed footer, e.g. "01/05/24, 02:30 PM".
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// BuildNotification returns the fixed test embed stamped with the given time.
func BuildNotification(stamp string) model.Notification {
	return model.Notification{
		Title:       embedTitle,
		Description: embedDescription,
		Color:       embedColor,
		Author: model.NotificationAuthor{
			Name:    authorName,
			IconURL: authorIconURL,
		},
		Footer: "Sent on " + stamp,
		Fields: []model.NotificationField{
			{
				Name:   "Test Field",
				Value:  "This is a test message from the server",
				Inline: false,
			},
			{
				Name:   "Status",
				Value:  "✅ Working",
				Inline: true,
			},
		},
	}
}

// Classify converts a notifier error into a SendResult.
func Classify(err error) model.SendResult {
	if err == nil {
		return model.SendResult{Success: true}
	}

	var rejection *model.RejectionError
	if errors.As(err, &rejection) {
		body := rejection.Body
		if body == "" {
			body = "No response"
		}
		return model.SendResult{
			StatusCode: rejection.StatusCode,
			Detail:     fmt.Sprintf("Discord returned status %d: %s", rejection.StatusCode, body),
		}
	}

	return model.SendResult{Detail: "Failed to send: " + err.Error()}
}
