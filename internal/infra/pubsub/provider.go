// Package pubsub contains the mail dispatch implementations. Events flow to
// the mail worker through a queue so activation emails never block or fail
// the registration request.
package pubsub

import (
	"context"
	"log/slog"

	"dailyfresh/config"
	"dailyfresh/internal/domain/constants"
	"dailyfresh/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopDispatcher drops events when mail dispatch is disabled
type noopDispatcher struct {
	logger *slog.Logger
}

func (d *noopDispatcher) DispatchActivationEmail(ctx context.Context, event *service.MailEvent) error {
	d.logger.Debug("[NoopMail] Mail dispatch disabled, skipping",
		slog.String("email", event.Email),
	)

	return nil
}

func (d *noopDispatcher) Close() error {
	return nil
}

// DispatcherParams holds dependencies for MailDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailDispatcher creates a MailDispatcher based on configuration
func NewMailDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If mail dispatch is not configured, drop events
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderNoop {
		logger.Info("Mail dispatch not configured, using no-op dispatcher")

		return &noopDispatcher{logger: logger}, nil
	}

	var dispatcher service.MailDispatcher
	var err error

	switch cfg.Provider {
	case constants.MailProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP dispatcher for mail events",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPDispatcher(cfg.LocalEndpoint, logger)

	case constants.MailProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub dispatcher for mail events",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubDispatcher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the mail dispatch FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailDispatcher),
)
