package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mapic/config"
	"mapic/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPushMessage_RoundTrip(t *testing.T) {
	event := &service.DispatchEvent{
		RequestID:   "req-1",
		Channel:     service.ChannelEmail,
		Destination: "ana@example.com",
		Subject:     "Activate your account",
		Body:        "Your code is 123456",
	}

	body, err := EncodePushMessage(event, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	decoded, msg, err := DecodePushMessage(body)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
	assert.Equal(t, "email", msg.Message.Attributes["channel"])
	assert.Equal(t, "req-1", msg.Message.Attributes["request_id"])
	assert.Equal(t, "2024-05-01T12:00:00Z", msg.Message.PublishTime)
}

func TestDecodePushMessage_Invalid(t *testing.T) {
	_, _, err := DecodePushMessage([]byte("not json"))
	assert.Error(t, err)

	_, _, err = DecodePushMessage([]byte(`{"message":{"data":"%%%"}}`))
	assert.Error(t, err)
}

func TestLocalHTTPPublisher(t *testing.T) {
	var received PushMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-9", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := pub.PublishDispatchEvent(context.Background(), &service.DispatchEvent{
		RequestID:   "req-9",
		Channel:     service.ChannelSMS,
		Destination: "+15550001",
		Body:        "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "sms", received.Message.Attributes["channel"])
	assert.NotEmpty(t, received.Message.MessageID)
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	pub := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := pub.PublishDispatchEvent(context.Background(), &service.DispatchEvent{Channel: service.ChannelSMS, Destination: "x"})
	assert.Error(t, err)
}

func TestNewEventPublisher_Disabled(t *testing.T) {
	pub, err := NewEventPublisher(PublisherParams{Ctx: context.Background(), Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, pub)
	assert.NoError(t, pub.PublishDispatchEvent(context.Background(), &service.DispatchEvent{}))
}

func TestNewEventPublisher_Misconfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: config.PubSubProviderLocal}},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, TopicID: "t"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: config.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(PublisherParams{
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			assert.Error(t, err)
		})
	}
}

type failingPublisher struct{ noopPublisher }

func (failingPublisher) PublishDispatchEvent(context.Context, *service.DispatchEvent) error {
	return assert.AnError
}

func TestDispatcher_Send(t *testing.T) {
	d := NewDispatcher(&noopPublisher{logger: discardLogger()}, discardLogger())
	assert.NoError(t, d.Send(context.Background(), &service.DispatchEvent{Channel: service.ChannelPush, Destination: "u"}))
	assert.Error(t, d.Send(context.Background(), &service.DispatchEvent{Channel: service.ChannelPush}))

	failing := NewDispatcher(&failingPublisher{}, discardLogger())
	assert.ErrorIs(t, failing.Send(context.Background(), &service.DispatchEvent{Channel: service.ChannelSMS, Destination: "x"}), assert.AnError)
}
