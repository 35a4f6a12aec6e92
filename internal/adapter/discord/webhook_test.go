package discord

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentra-notify/internal/domain/model"
)

const testWebhookURL = "https://discord.com/api/webhooks/123/token"

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func testNotification() model.Notification {
	return model.Notification{
		Title:       "Title",
		Description: "Description",
		Color:       0x5865F2,
		Author:      model.NotificationAuthor{Name: "Zentra App", IconURL: "https://i.imgur.com/zPyOczX.png"},
		Footer:      "Sent on 01/05/24, 02:30 PM",
		Fields: []model.NotificationField{
			{Name: "Status", Value: "ok", Inline: true},
		},
	}
}

func newMockedWebhook(t *testing.T) *Webhook {
	t.Helper()
	w := NewWebhook(testWebhookURL, "Zentra-Server/1.0", 10*time.Second, nopLogger{})
	httpmock.ActivateNonDefault(w.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)
	return w
}

func TestWebhook_Send_AcceptedStatuses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			w := newMockedWebhook(t)
			httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
				httpmock.NewStringResponder(status, ""))

			err := w.Send(context.Background(), testNotification())
			require.NoError(t, err)
			assert.Equal(t, 1, httpmock.GetTotalCallCount())
		})
	}
}

func TestWebhook_Send_SetsHeadersAndBody(t *testing.T) {
	w := newMockedWebhook(t)

	expected, err := Encode(testNotification())
	require.NoError(t, err)

	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.Equal(t, "Zentra-Server/1.0", req.Header.Get("User-Agent"))

			body, err := io.ReadAll(req.Body)
			assert.NoError(t, err)
			assert.Equal(t, string(expected), string(body))
			return httpmock.NewStringResponse(http.StatusNoContent, ""), nil
		})

	require.NoError(t, w.Send(context.Background(), testNotification()))
}

func TestWebhook_Send_Rejected(t *testing.T) {
	w := newMockedWebhook(t)
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"Unknown Webhook"}`))

	err := w.Send(context.Background(), testNotification())
	require.Error(t, err)

	var rejection *model.RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, http.StatusNotFound, rejection.StatusCode)
	assert.Equal(t, `{"message":"Unknown Webhook"}`, rejection.Body)
}

func TestWebhook_Send_UnexpectedSuccessStatusIsRejected(t *testing.T) {
	w := newMockedWebhook(t)
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusCreated, "created"))

	err := w.Send(context.Background(), testNotification())

	var rejection *model.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusCreated, rejection.StatusCode)
}

func TestWebhook_Send_TransportError(t *testing.T) {
	w := newMockedWebhook(t)
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewErrorResponder(errors.New("dial tcp 127.0.0.1:443: connect: connection refused")))

	err := w.Send(context.Background(), testNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	var rejection *model.RejectionError
	assert.False(t, errors.As(err, &rejection))
}

func TestWebhook_Send_InvalidEmbedNeverHitsNetwork(t *testing.T) {
	w := newMockedWebhook(t)
	httpmock.RegisterResponder(http.MethodPost, testWebhookURL,
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	notification := testNotification()
	notification.Title = ""

	err := w.Send(context.Background(), notification)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid embed")
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestWebhook_Send_EmptyURL(t *testing.T) {
	w := NewWebhook("", "", time.Second, nopLogger{})
	err := w.Send(context.Background(), testNotification())
	assert.EqualError(t, err, "webhook URL is empty")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stream reset") }

func TestReadBody_FallsBackToErrorText(t *testing.T) {
	assert.Equal(t, "stream reset", readBody(failingReader{}))
}
