package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Event type attribute values, used by subscribers to route messages.
const (
	eventTypeProductMatch  = "product_match"
	eventTypeSyncCompleted = "sync_completed"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishProductMatch publishes a product match event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishProductMatch(ctx context.Context, event *service.ProductMatchEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeProductMatch,
		"product_id": strconv.FormatInt(event.ProductID, 10),
	}

	p.logger.Info("[LocalPubSub] Publishing product match event",
		slog.String("endpoint", p.endpoint),
		slog.Int64("product_id", event.ProductID),
		slog.Int("match_count", len(event.Matches)),
	)

	return p.publish(ctx, event, attributes, event.RequestID)
}

// PublishSyncCompleted publishes a sync completion event by sending HTTP POST to the local endpoint
func (p *localHTTPPublisher) PublishSyncCompleted(ctx context.Context, event *service.SyncCompletedEvent) error {
	attributes := map[string]string{
		"event_type": eventTypeSyncCompleted,
	}

	p.logger.Info("[LocalPubSub] Publishing sync completed event",
		slog.String("endpoint", p.endpoint),
		slog.Int("attempted", event.Attempted),
		slog.Int("succeeded", event.Succeeded),
		slog.Int("failed", event.Failed),
	)

	return p.publish(ctx, event, attributes, event.RequestID)
}

func (p *localHTTPPublisher) publish(ctx context.Context, event any, attributes map[string]string, requestID string) error {
	// Serialize the event to JSON
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	// Create a Pub/Sub push message structure
	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/match-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	// Add optional request_id for tracing
	if requestID != "" {
		attributes["request_id"] = requestID
	}
	pushMsg.Message.Attributes = attributes

	// Serialize the push message
	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	// Send HTTP POST request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
