package pubsub

import (
	"context"
	"log/slog"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"

	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
)

type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePublisher fails fast when the topic does not exist, so a
// misconfigured deployment stops at startup rather than on the first order.
func NewGooglePublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishOrderEvent blocks until the server acknowledges the message.
func (p *googlePublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := newOrderMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// a failed ordered publish pauses its key
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish %s event", event.Type)
	}

	p.logger.Info("Order event published",
		slog.String("type", event.Type),
		slog.String("order_code", event.OrderCode),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
