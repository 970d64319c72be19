package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/geo"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"
	"github.com/BeMaTech82/hortago/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500

	// Web path a notification opens when tapped.
	productURLFormat = "/produits/%d"
)

type notificationService struct {
	searchRepo  repository.SearchRepository
	userRepo    repository.UserRepository
	matchRepo   repository.MatchRepository
	deviceRepo  repository.DeviceRepository
	publisher   service.EventPublisher
	pushService service.PushService
	logger      *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	SearchRepo  repository.SearchRepository
	UserRepo    repository.UserRepository
	MatchRepo   repository.MatchRepository
	DeviceRepo  repository.DeviceRepository
	Publisher   service.EventPublisher
	PushService service.PushService
	Logger      *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		searchRepo:  params.SearchRepo,
		userRepo:    params.UserRepo,
		matchRepo:   params.MatchRepo,
		deviceRepo:  params.DeviceRepo,
		publisher:   params.Publisher,
		pushService: params.PushService,
		logger:      params.Logger,
	}
}

// DispatchProductMatches evaluates a new product against every saved search.
// Any read failure aborts this dispatch pass without surfacing an error; the
// triggering product creation must succeed regardless.
func (s *notificationService) DispatchProductMatches(ctx context.Context, product *entity.Product) []*entity.ProximityMatch {
	if product.Location == nil || !product.Location.IsValid() {
		s.logger.Debug("Product has no usable location, skipping dispatch", "productID", product.ID)

		return nil
	}

	// 1. Load every saved search.
	searches, err := s.searchRepo.FindAllSearches(ctx)
	if err != nil {
		s.logger.Error("Failed to load saved searches, aborting dispatch", "productID", product.ID, "error", err)

		return nil
	}

	// 2. Keep the searches whose category and filters accept this product.
	candidates := make([]*entity.SavedSearch, 0, len(searches))
	for _, search := range searches {
		if !search.Category.Matches(product.Category) {
			continue
		}
		if search.MaxPrice != nil && product.Price > *search.MaxPrice {
			continue
		}
		if !keywordsMatch(search.Keywords, product) {
			continue
		}
		candidates = append(candidates, search)
	}
	if len(candidates) == 0 {
		return nil
	}

	// 3. Resolve the owning users in one query.
	ownerIDs := make([]uuid.UUID, 0, len(candidates))
	for _, search := range candidates {
		ownerIDs = append(ownerIDs, search.UserID)
	}
	owners, err := s.userRepo.FindUsersByIDs(ctx, ownerIDs)
	if err != nil {
		s.logger.Error("Failed to load search owners, aborting dispatch", "productID", product.ID, "error", err)

		return nil
	}
	ownerByID := make(map[uuid.UUID]*entity.User, len(owners))
	for _, owner := range owners {
		ownerByID[owner.ID] = owner
	}

	// 4. One match per search whose owner lies within its radius. Owners
	// without a location are skipped, never treated as an error. A user with
	// several matching searches gets several matches; that fan-out is
	// intended behavior.
	now := time.Now()
	matches := make([]*entity.ProximityMatch, 0, len(candidates))
	for _, search := range candidates {
		owner, ok := ownerByID[search.UserID]
		if !ok || owner.Location == nil || !owner.Location.IsValid() {
			continue
		}
		if !geo.WithinRadius(*product.Location, search.RadiusKm, owner.Location) {
			continue
		}

		matches = append(matches, &entity.ProximityMatch{
			ID:         uuid.New(),
			ProductID:  product.ID,
			SearchID:   search.ID,
			UserID:     search.UserID,
			DistanceKm: util.Round1(geo.Distance(*product.Location, *owner.Location)),
			Status:     entity.MatchStatusPending,
			CreatedAt:  now,
		})
	}
	if len(matches) == 0 {
		return nil
	}

	if err := s.matchRepo.BatchCreateMatches(ctx, matches); err != nil {
		s.logger.Error("Failed to persist matches, aborting dispatch", "productID", product.ID, "error", err)

		return nil
	}

	// 5. Hand the matches to the push worker.
	event := buildMatchEvent(product, matches)
	if err := s.publisher.PublishProductMatch(ctx, event); err != nil {
		s.logger.Error("Failed to publish match event", "productID", product.ID, "error", err)

		return matches
	}
	s.logger.Info("Product match event published", "productID", product.ID, "matches", len(matches))

	return matches
}

// DeliverMatchEvent resolves device tokens for the matched users and sends the
// push notifications. Invoked by the push worker.
func (s *notificationService) DeliverMatchEvent(ctx context.Context, event *service.ProductMatchEvent) error {
	matchesByUser := make(map[uuid.UUID][]service.MatchedSearch, len(event.Matches))
	userIDs := make([]uuid.UUID, 0, len(event.Matches))
	for _, match := range event.Matches {
		userID, err := uuid.Parse(match.UserID)
		if err != nil {
			s.logger.Warn("Skipping match with malformed user ID", "userID", match.UserID)

			continue
		}
		if _, seen := matchesByUser[userID]; !seen {
			userIDs = append(userIDs, userID)
		}
		matchesByUser[userID] = append(matchesByUser[userID], match)
	}
	if len(userIDs) == 0 {
		return nil
	}

	devices, err := s.deviceRepo.FindDevicesForUsers(ctx, userIDs)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		s.logger.Debug("No registered devices for matched users", "productID", event.ProductID)

		return nil
	}

	tokensByUser := make(map[uuid.UUID][]string, len(userIDs))
	for _, device := range devices {
		tokensByUser[device.UserID] = append(tokensByUser[device.UserID], device.FCMToken)
	}

	title := "Nouveau produit près de chez vous"
	var invalidTokens []string

	// One push per match, delivered to every device of the matched user. A
	// user with several matching searches is notified once per search.
	for userID, matches := range matchesByUser {
		tokens := tokensByUser[userID]
		if len(tokens) == 0 {
			continue
		}
		for _, match := range matches {
			body := fmt.Sprintf("%s (%s) à %s", event.ProductName, event.Category, util.FormatDistance(match.DistanceKm))
			data := map[string]string{
				"url":         fmt.Sprintf(productURLFormat, event.ProductID),
				"product_id":  fmt.Sprintf("%d", event.ProductID),
				"match_id":    match.MatchID,
				"search_id":   match.SearchID,
				"distance_km": fmt.Sprintf("%.1f", match.DistanceKm),
				"actions":     "open,done",
			}

			successCount, _, batchInvalid, err := s.sendBatched(ctx, tokens, title, body, data)
			invalidTokens = append(invalidTokens, batchInvalid...)

			status := entity.MatchStatusSent
			if err != nil || successCount == 0 {
				s.logger.Warn("Push delivery failed", "matchID", match.MatchID, "error", err)
				status = entity.MatchStatusFailed
			}
			s.recordMatchStatus(ctx, match.MatchID, status)
		}
	}

	// Deactivate devices whose tokens the platform rejected.
	s.cleanupInvalidDevices(ctx, devices, invalidTokens)

	return nil
}

// sendBatched sends one notification to a token list, splitting it into
// platform-sized batches.
func (s *notificationService) sendBatched(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))

		ok, failed, invalid, batchErr := s.pushService.SendBatchNotification(ctx, tokens[i:end], title, body, data)
		if batchErr != nil {
			failureCount += end - i
			err = batchErr

			continue
		}
		successCount += ok
		failureCount += failed
		invalidTokens = append(invalidTokens, invalid...)
	}

	return successCount, failureCount, invalidTokens, err
}

// recordMatchStatus persists a match's delivery outcome, logging on failure.
func (s *notificationService) recordMatchStatus(ctx context.Context, rawMatchID, status string) {
	matchID, err := uuid.Parse(rawMatchID)
	if err != nil {
		s.logger.Warn("Skipping status update for malformed match ID", "matchID", rawMatchID)

		return
	}
	if err := s.matchRepo.UpdateMatchStatus(ctx, matchID, status); err != nil {
		s.logger.Warn("Failed to update match status", "matchID", matchID, "error", err)
	}
}

// cleanupInvalidDevices soft-deletes devices whose push tokens were rejected.
func (s *notificationService) cleanupInvalidDevices(ctx context.Context, devices []*entity.UserDevice, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		deviceByToken[device.FCMToken] = device
	}
	for _, token := range invalidTokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}
		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			s.logger.Warn("Failed to deactivate invalid device", "deviceID", device.ID, "error", err)
		}
	}
}

// keywordsMatch reports whether a search's normalized keywords all appear in
// the product's name or description. An empty keyword string matches anything.
func keywordsMatch(keywords string, product *entity.Product) bool {
	if keywords == "" {
		return true
	}

	haystack := strings.ToLower(product.Name + " " + product.Description)
	for _, word := range strings.Fields(keywords) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}

	return true
}

// buildMatchEvent assembles the event carried to the push worker.
func buildMatchEvent(product *entity.Product, matches []*entity.ProximityMatch) *service.ProductMatchEvent {
	matched := make([]service.MatchedSearch, 0, len(matches))
	for _, match := range matches {
		matched = append(matched, service.MatchedSearch{
			MatchID:    match.ID.String(),
			SearchID:   match.SearchID.String(),
			UserID:     match.UserID.String(),
			DistanceKm: match.DistanceKm,
		})
	}

	return &service.ProductMatchEvent{
		ProductID:   product.ID,
		ProductName: product.Name,
		Category:    product.Category.String(),
		Price:       product.Price,
		Unit:        product.Unit,
		Latitude:    product.Location.Latitude,
		Longitude:   product.Location.Longitude,
		Matches:     matched,
	}
}
