package analytics

import (
	"context"
	"log/slog"

	"appname/config"
	"appname/internal/domain/constants"
	"appname/internal/domain/service"
	"appname/internal/infra/pubsub"

	"github.com/pkg/errors"
	"github.com/posthog/posthog-go"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for AnalyticsClient, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAnalyticsClient creates an AnalyticsClient based on configuration
func NewAnalyticsClient(params ClientParams) (service.AnalyticsClient, error) {
	cfg := params.Config.Analytics
	logger := params.Logger

	// If analytics is not configured, return a no-op client
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Analytics not configured, using no-op client")

		return &noopClient{logger: logger}, nil
	}

	var client service.AnalyticsClient
	var err error

	switch cfg.Provider {
	case constants.AnalyticsProviderHTTP:
		if cfg.Host == "" {
			return nil, errors.New("host is required for http provider")
		}
		logger.Info("Using synchronous HTTP analytics client",
			slog.String("host", cfg.Host),
		)

		client = NewHTTPClient(cfg.Host, cfg.APIKey, cfg.Timeout, logger)

	case constants.AnalyticsProviderPostHog:
		logger.Info("Using PostHog analytics client",
			slog.String("host", cfg.Host),
		)

		client, err = NewPostHogClient(cfg.APIKey, posthog.Config{
			Endpoint:  cfg.Host,
			Interval:  cfg.FlushInterval,
			BatchSize: cfg.BatchSize,
		}, logger)
		if err != nil {
			return nil, err
		}

	case constants.AnalyticsProviderPubSub:
		publisher, pubErr := pubsub.NewEventPublisher(context.Background(), cfg.PubSub, logger)
		if pubErr != nil {
			return nil, errors.Wrap(pubErr, "failed to create event publisher")
		}

		client = NewPubSubClient(publisher, logger)

	default:
		return nil, errors.Errorf("unknown analytics provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to flush pending events on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing AnalyticsClient")

			return client.Close()
		},
	})

	return client, nil
}

// Module provides the analytics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAnalyticsClient),
)
