package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/BeMaTech82/hortago/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
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

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishProductMatch publishes a product match event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishProductMatch(ctx context.Context, event *service.ProductMatchEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeProductMatch,
		"product_id": strconv.FormatInt(event.ProductID, 10),
	}

	p.logger.Info("[GooglePubSub] Publishing product match event",
		slog.Int64("product_id", event.ProductID),
		slog.Int("match_count", len(event.Matches)),
	)

	return p.publish(ctx, event, attributes, event.RequestID)
}

// PublishSyncCompleted publishes a sync completion event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishSyncCompleted(ctx context.Context, event *service.SyncCompletedEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeSyncCompleted,
	}

	p.logger.Info("[GooglePubSub] Publishing sync completed event",
		slog.Int("attempted", event.Attempted),
		slog.Int("succeeded", event.Succeeded),
		slog.Int("failed", event.Failed),
	)

	return p.publish(ctx, event, attributes, event.RequestID)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, event any, attributes map[string]string, requestID string) error {
	// Serialize the event to JSON
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if requestID != "" {
		attributes["request_id"] = requestID
	}

	msg := &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}

	// Publish message and wait for the result
	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
