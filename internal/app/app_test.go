package app

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentra-notify/internal/adapter/clock"
	"zentra-notify/internal/adapter/console"
	"zentra-notify/internal/adapter/discord"
	"zentra-notify/internal/adapter/logging"
	"zentra-notify/internal/usecase"
)

const testWebhookURL = "https://discord.com/api/webhooks/123/token"

func newTestApp(t *testing.T, schedule string) (*App, *bytes.Buffer) {
	t.Helper()

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	var out bytes.Buffer
	logger := logging.NewConsole(&bytes.Buffer{}, "debug", true)
	reporter := console.New(&out)
	notifier := discord.NewWebhook(testWebhookURL, "Zentra-Server/1.0", 10*time.Second, logger)
	at := clock.Fixed(time.Date(2024, time.January, 5, 14, 30, 0, 0, time.Local))
	sender := usecase.NewNotificationSender(notifier, reporter, at, logger)

	return New(sender, logger, reporter, schedule), &out
}

func TestApp_RunOnce_Delivered(t *testing.T) {
	application, out := newTestApp(t, "")
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	require.NoError(t, application.Run(context.Background()))

	printed := out.String()
	assert.Contains(t, printed, strings.Repeat("=", 60))
	assert.Contains(t, printed, "Discord Embed Test")
	assert.Contains(t, printed, "[TEST] Time: 01/05/24, 02:30 PM")
	assert.Contains(t, printed, "Successfully sent to Discord!")
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestApp_RunOnce_Rejected(t *testing.T) {
	application, out := newTestApp(t, "")
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"Unknown Webhook"}`))

	err := application.Run(context.Background())
	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "Unknown Webhook")
	assert.Contains(t, out.String(), "Discord returned status 404")
}

func TestApp_Run_InvalidSchedule(t *testing.T) {
	application, _ := newTestApp(t, "not a cron")

	err := application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestApp_Run_ScheduledStopsOnCancel(t *testing.T) {
	application, out := newTestApp(t, "@every 1h")
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	require.Eventually(t, func() bool {
		return httpmock.GetTotalCallCount() == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.NotContains(t, out.String(), "Discord Embed Test")
}
