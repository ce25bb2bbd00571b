package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"dailyfresh/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubDispatcher implements MailDispatcher using Google Cloud Pub/Sub
type googlePubSubDispatcher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubDispatcher creates a new Google Pub/Sub mail dispatcher
func NewGooglePubSubDispatcher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MailDispatcher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Google Pub/Sub mail dispatcher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubDispatcher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// DispatchActivationEmail publishes a mail event to Google Pub/Sub
func (d *googlePubSubDispatcher) DispatchActivationEmail(ctx context.Context, event *service.MailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"email": event.Email,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	d.logger.Info("[GooglePubSub] Dispatching activation mail",
		slog.String("email", event.Email),
	)

	result := d.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	d.logger.Info("[GooglePubSub] Mail event published",
		slog.String("email", event.Email),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (d *googlePubSubDispatcher) Close() error {
	if d.publisher != nil {
		d.publisher.Stop()
	}
	if d.client != nil {
		return errors.WithStack(d.client.Close())
	}

	return nil
}
