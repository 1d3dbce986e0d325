package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"erpgate/config"
	"erpgate/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAuditEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.AuditEvent{
		Type:         service.AuditCredentialRotated,
		OccurredAt:   time.Now().UTC(),
		RequestID:    "req-1",
		CredentialID: "cred-1",
		RemoteUserID: 7,
	}

	require.NoError(t, publisher.PublishAuditEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "credential.rotated", received.Message.Attributes["type"])
	assert.Equal(t, "cred-1", received.Message.Attributes["credential_id"])
	assert.Equal(t, "cred-1", received.Message.OrderingKey)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AuditEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, int64(7), decoded.RemoteUserID)
	assert.Equal(t, service.AuditCredentialRotated, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).
		PublishAuditEvent(context.Background(), &service.AuditEvent{Type: service.AuditCredentialIssued})
	assert.Error(t, err)
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	noop, err := NewEventPublisher(PublisherParams{
		Lc: lc, Ctx: context.Background(), Config: &config.Config{}, Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, noop)
	assert.NoError(t, noop.PublishAuditEvent(context.Background(), &service.AuditEvent{Type: service.AuditCredentialIssued}))

	local, err := NewEventPublisher(PublisherParams{
		Lc: lc, Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, local)

	_, err = NewEventPublisher(PublisherParams{
		Lc: lc, Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)

	_, err = NewEventPublisher(PublisherParams{
		Lc: lc, Ctx: context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}
