package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
)

const (
	pushTimeout      = 30 * time.Second
	pushSubscription = "projects/local/subscriptions/motovibe-order-events"
)

// pushPublisher delivers order events straight to an HTTP endpoint in the
// body shape of a Pub/Sub push subscription, so a subscriber can be
// developed without the emulator.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// PushRequest is the body POSTed for every event.
type PushRequest struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type PushMessage struct {
	Data        string            `json:"data"` // base64 of the JSON event
	Attributes  map[string]string `json:"attributes,omitempty"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func NewPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
	}
}

func (p *pushPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := newOrderMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushRequest{
		Subscription: pushSubscription,
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			OrderingKey: msg.orderingKey,
			MessageID:   uuid.Must(uuid.NewV7()).String(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.Debug("Order event pushed",
		slog.String("type", event.Type),
		slog.String("order_code", event.OrderCode),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
