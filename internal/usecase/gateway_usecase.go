package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"
)

// RequestClass is the closed enumeration of request kinds the gateway
// distinguishes. Every intercepted request maps to exactly one class, and
// every class maps to exactly one strategy.
type RequestClass int

const (
	// ClassPassThrough covers requests for foreign origins. Not intercepted.
	ClassPassThrough RequestClass = iota
	// ClassNavigation covers document requests (Accept: text/html).
	ClassNavigation
	// ClassAPI covers requests addressed to the configured API origin.
	ClassAPI
	// ClassAsset covers script, style and worker assets.
	ClassAsset
	// ClassDefault covers everything else, images included.
	ClassDefault
)

// String returns a short name for the request class.
func (c RequestClass) String() string {
	switch c {
	case ClassPassThrough:
		return "pass-through"
	case ClassNavigation:
		return "navigation"
	case ClassAPI:
		return "api"
	case ClassAsset:
		return "asset"
	default:
		return "default"
	}
}

// Strategy identifies the caching strategy applied to a request.
type Strategy int

const (
	// StrategyNone performs a plain forward with no cache involvement.
	StrategyNone Strategy = iota
	// StrategyNetworkFirst tries the network, falling back to cache then to
	// the offline document.
	StrategyNetworkFirst
	// StrategyStaleWhileRevalidate serves cache immediately and refreshes the
	// entry in the background.
	StrategyStaleWhileRevalidate
	// StrategyCacheFirst serves cache when present and fetches only on miss.
	StrategyCacheFirst
)

// String returns the conventional name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNetworkFirst:
		return "network-first"
	case StrategyStaleWhileRevalidate:
		return "stale-while-revalidate"
	case StrategyCacheFirst:
		return "cache-first"
	default:
		return "none"
	}
}

// Response sources reported by the gateway.
const (
	SourceNetwork  = "network"
	SourceCache    = "cache"
	SourceFallback = "fallback"
	SourceQueued   = "queued"
)

// GatewayResponse is the outcome of routing one request.
type GatewayResponse struct {
	Response *service.CachedResponse
	Source   string             // SourceNetwork, SourceCache, SourceFallback or SourceQueued.
	Class    RequestClass       // The class the request was routed as.
	Task     *entity.QueuedTask // Set when a failed mutation was queued for replay.
}

// GatewayUsecase routes every request arriving at the offline edge gateway
// through exactly one caching strategy.
type GatewayUsecase interface {
	// Route classifies the request and delegates to the class's strategy.
	Route(ctx context.Context, req *service.UpstreamRequest) (*GatewayResponse, error)

	// PrecacheShell fetches the configured shell manifest into the shell
	// generation. Failed entries are logged and skipped.
	PrecacheShell(ctx context.Context) error

	// Activate evicts cache generations whose version tag is stale.
	Activate(ctx context.Context) error
}
