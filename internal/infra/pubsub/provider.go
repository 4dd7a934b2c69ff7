// Package pubsub publishes order lifecycle events. The provider is chosen by
// configuration: Google Pub/Sub, a local push endpoint, or nothing at all.
package pubsub

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/umithief/motovibe6/config"
	"github.com/umithief/motovibe6/internal/domain/constants"
	"github.com/umithief/motovibe6/internal/domain/service"
	"github.com/umithief/motovibe6/internal/errors"
)

type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher drops every event; used when no provider is configured
// and by the embedded storefront backend.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.logger.Debug("Order event dropped, no publisher configured",
		slog.String("type", event.Type),
		slog.String("order_code", event.OrderCode),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the configured publisher and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		return NewNoopPublisher(logger), nil
	}

	logger = logger.With(slog.String("provider", cfg.Provider))

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: localEndpoint is required for the local provider")
		}
		logger.Info("Order events pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewPushPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
		}
		logger.Info("Order events published to Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("pubsub: unknown provider %q", cfg.Provider)
}
