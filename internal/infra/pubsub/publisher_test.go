package pubsub

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/constants"
	"github.com/umithief/motovibe6/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID: "req-1",
		Type:      constants.OrderEventCreated,
		OrderID:   "0190a5b2-0000-7000-8000-000000000001",
		OrderCode: "MV-2024-0042",
		Status:    "preparing",
		Total:     "18800",
		At:        time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestPushPublisher_Body(t *testing.T) {
	var (
		got       PushRequest
		requestID string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewPushPublisher(srv.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "MV-2024-0042", got.Message.Attributes["order_code"])
	assert.Equal(t, constants.OrderEventCreated, got.Message.Attributes["event_type"])
	assert.NotEmpty(t, got.Message.MessageID)
	assert.Equal(t, "0190a5b2-0000-7000-8000-000000000001", got.Message.OrderingKey)

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "18800", event.Total)
}

func TestPushPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewPushPublisher(srv.URL, newDiscardLogger())

	assert.Error(t, publisher.PublishOrderEvent(context.Background(), sampleEvent()))
}

func TestNewPublisher_Selection(t *testing.T) {
	ctx := context.Background()
	logger := newDiscardLogger()

	p, err := newPublisher(ctx, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)
	assert.NoError(t, p.PublishOrderEvent(ctx, sampleEvent()))

	p, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8090/push"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &pushPublisher{}, p)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.PubSubConfig{Provider: "kafka"}, logger)
	assert.Error(t, err)
}
