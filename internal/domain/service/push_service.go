// Package service defines interfaces for core, stateless domain logic and for
// the external collaborators the use cases depend on.
package service

import (
	"context"
)

// PushService defines the interface for the platform push-notification surface.
// Delivery is best-effort: callers log failures but never fail the triggering
// operation because a push could not be sent.
type PushService interface {
	// SendBatchNotification sends a push to multiple device tokens (max 500).
	// Returns success count, failure count and the tokens the platform reported
	// as invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
