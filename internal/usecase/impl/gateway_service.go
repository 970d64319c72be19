package impl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type gatewayService struct {
	cache     service.ResponseCache
	upstream  service.UpstreamClient
	syncQueue usecase.SyncUsecase
	config    *config.Config
	logger    *slog.Logger
}

// GatewayServiceParams holds dependencies for GatewayService, injected by Fx.
type GatewayServiceParams struct {
	fx.In

	Cache     service.ResponseCache
	Upstream  service.UpstreamClient
	SyncQueue usecase.SyncUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGatewayService creates a new gateway routing service instance
func NewGatewayService(params GatewayServiceParams) usecase.GatewayUsecase {
	return &gatewayService{
		cache:     params.Cache,
		upstream:  params.Upstream,
		syncQueue: params.SyncQueue,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// Route classifies the request and delegates to exactly one strategy.
func (s *gatewayService) Route(ctx context.Context, req *service.UpstreamRequest) (*usecase.GatewayResponse, error) {
	class := Classify(req, s.config.Gateway.APIOrigin)

	// Mutations are never cached. When upstream is unreachable they are
	// captured into the sync queue for later replay instead of failing.
	if class != usecase.ClassPassThrough && isMutation(req.Method) {
		return s.routeMutation(ctx, req, class)
	}

	switch StrategyFor(class) {
	case usecase.StrategyNetworkFirst:
		return s.networkFirst(ctx, req, class)
	case usecase.StrategyStaleWhileRevalidate:
		return s.staleWhileRevalidate(ctx, req, class)
	case usecase.StrategyCacheFirst:
		return s.cacheFirst(ctx, req, class)
	default:
		return s.passThrough(ctx, req, class)
	}
}

// PrecacheShell fetches the configured shell manifest into the shell
// generation. Failed entries are logged and skipped.
func (s *gatewayService) PrecacheShell(ctx context.Context) error {
	for _, assetPath := range s.config.Gateway.ShellManifest {
		req := &service.UpstreamRequest{Method: http.MethodGet, Path: assetPath, Header: http.Header{}}

		resp, err := s.upstream.Do(ctx, req)
		if err != nil || !resp.OK() {
			s.logger.Warn("Shell precache skipped entry", "path", assetPath, "error", err)

			continue
		}
		if err := s.cache.Put(ctx, s.shellGeneration(), cacheKey(req), resp); err != nil {
			s.logger.Warn("Shell precache store failed", "path", assetPath, "error", err)
		}
	}
	s.logger.Info("Shell precache finished", "entries", len(s.config.Gateway.ShellManifest), "generation", s.shellGeneration())

	return nil
}

// Activate evicts cache generations whose version tag is stale.
func (s *gatewayService) Activate(ctx context.Context) error {
	if err := s.cache.Activate(ctx); err != nil {
		return errors.Wrap(err, "cache activation failed")
	}

	generations, err := s.cache.ListGenerations(ctx)
	if err != nil {
		s.logger.Warn("Failed to enumerate cache generations", "error", err)

		return nil
	}
	s.logger.Info("Cache activated", "version", s.config.Gateway.CacheVersion, "generations", generations)

	return nil
}

// routeMutation forwards a mutating request, queueing it on network failure.
func (s *gatewayService) routeMutation(ctx context.Context, req *service.UpstreamRequest, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	resp, err := s.upstream.Do(ctx, req)
	if err == nil {
		return &usecase.GatewayResponse{Response: resp, Source: usecase.SourceNetwork, Class: class}, nil
	}
	s.logger.Warn("Mutation fetch failed, queueing for sync", "method", req.Method, "path", req.Path, "error", err)

	task, enqueueErr := s.syncQueue.Enqueue(ctx, &usecase.EnqueueTaskInput{
		Method:      req.Method,
		Path:        req.Path,
		ContentType: req.Header.Get("Content-Type"),
		Body:        req.Body,
	})
	if enqueueErr != nil {
		// Queue persistence failures are surfaced, never swallowed.
		return nil, enqueueErr
	}

	return &usecase.GatewayResponse{
		Response: queuedResponse(),
		Source:   usecase.SourceQueued,
		Class:    class,
		Task:     task,
	}, nil
}

// networkFirst tries upstream, falling back to cache then to the offline page.
func (s *gatewayService) networkFirst(ctx context.Context, req *service.UpstreamRequest, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	resp, err := s.upstream.Do(ctx, req)
	if err == nil {
		s.store(ctx, req, resp)

		return &usecase.GatewayResponse{Response: resp, Source: usecase.SourceNetwork, Class: class}, nil
	}
	s.logger.Debug("Network-first fetch failed, trying cache", "path", req.Path, "error", err)

	if cached, cacheErr := s.lookup(ctx, req); cacheErr == nil {
		return &usecase.GatewayResponse{Response: cached, Source: usecase.SourceCache, Class: class}, nil
	}

	return s.fallback(ctx, class)
}

// staleWhileRevalidate serves any cached entry immediately and refreshes it in
// the background; without a cached entry the caller awaits the fetch.
func (s *gatewayService) staleWhileRevalidate(ctx context.Context, req *service.UpstreamRequest, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	if cached, err := s.lookup(ctx, req); err == nil {
		s.revalidate(ctx, req)

		return &usecase.GatewayResponse{Response: cached, Source: usecase.SourceCache, Class: class}, nil
	}

	resp, err := s.upstream.Do(ctx, req)
	if err != nil {
		s.logger.Debug("Revalidating fetch failed with empty cache", "path", req.Path, "error", err)

		return s.fallback(ctx, class)
	}
	s.store(ctx, req, resp)

	return &usecase.GatewayResponse{Response: resp, Source: usecase.SourceNetwork, Class: class}, nil
}

// cacheFirst serves cache when present and fetches only on miss.
func (s *gatewayService) cacheFirst(ctx context.Context, req *service.UpstreamRequest, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	if cached, err := s.lookup(ctx, req); err == nil {
		return &usecase.GatewayResponse{Response: cached, Source: usecase.SourceCache, Class: class}, nil
	}

	resp, err := s.upstream.Do(ctx, req)
	if err != nil {
		s.logger.Debug("Cache-first fetch failed with empty cache", "path", req.Path, "error", err)

		return s.fallback(ctx, class)
	}
	s.store(ctx, req, resp)

	return &usecase.GatewayResponse{Response: resp, Source: usecase.SourceNetwork, Class: class}, nil
}

// passThrough forwards the request untouched, with no cache involvement.
func (s *gatewayService) passThrough(ctx context.Context, req *service.UpstreamRequest, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	resp, err := s.upstream.Do(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "pass-through fetch failed")
	}

	return &usecase.GatewayResponse{Response: resp, Source: usecase.SourceNetwork, Class: class}, nil
}

// revalidate refreshes a cache entry in the background. The caller's response
// was already served; this only affects future requests.
func (s *gatewayService) revalidate(ctx context.Context, req *service.UpstreamRequest) {
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		resp, err := s.upstream.Do(bgCtx, req)
		if err != nil {
			s.logger.Debug("Background revalidation failed", "path", req.Path, "error", err)

			return
		}
		s.store(bgCtx, req, resp)
	}()
}

// lookup reads the entry for this exact request identity, shell generation
// first, then runtime.
func (s *gatewayService) lookup(ctx context.Context, req *service.UpstreamRequest) (*service.CachedResponse, error) {
	key := cacheKey(req)
	if cached, err := s.cache.Get(ctx, s.shellGeneration(), key); err == nil {
		return cached, nil
	}

	return s.cache.Get(ctx, s.runtimeGeneration(), key)
}

// store writes a response into the runtime generation. Only ok-status GET
// responses are ever cached.
func (s *gatewayService) store(ctx context.Context, req *service.UpstreamRequest, resp *service.CachedResponse) {
	if req.Method != http.MethodGet || !resp.OK() {
		return
	}

	if err := s.cache.Put(ctx, s.runtimeGeneration(), cacheKey(req), resp); err != nil {
		s.logger.Warn("Cache store failed", "path", req.Path, "error", err)
	}
}

// fallback serves the pre-cached offline document, or a bare unavailable
// response if even that is missing.
func (s *gatewayService) fallback(ctx context.Context, class usecase.RequestClass) (*usecase.GatewayResponse, error) {
	offlineReq := &service.UpstreamRequest{Method: http.MethodGet, Path: s.config.Gateway.OfflineFallbackPath}
	if cached, err := s.lookup(ctx, offlineReq); err == nil {
		return &usecase.GatewayResponse{Response: cached, Source: usecase.SourceFallback, Class: class}, nil
	}

	header := http.Header{}
	header.Set("Content-Type", "text/plain; charset=utf-8")

	return &usecase.GatewayResponse{
		Response: &service.CachedResponse{
			StatusCode: http.StatusServiceUnavailable,
			Header:     header,
			Body:       []byte("Hors ligne : contenu indisponible"),
			FetchedAt:  time.Now(),
		},
		Source: usecase.SourceFallback,
		Class:  class,
	}, nil
}

func (s *gatewayService) shellGeneration() string {
	return "shell-" + s.config.Gateway.CacheVersion
}

func (s *gatewayService) runtimeGeneration() string {
	return "runtime-" + s.config.Gateway.CacheVersion
}

// cacheKey normalizes a request identity to method plus path and query.
func cacheKey(req *service.UpstreamRequest) string {
	return req.Method + " " + req.Path
}

// isMutation reports whether a method changes upstream state and is therefore
// eligible for sync queue capture.
func isMutation(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// queuedResponse is returned to the client when a mutation was captured for
// later replay.
func queuedResponse() *service.CachedResponse {
	header := http.Header{}
	header.Set("Content-Type", "application/json; charset=utf-8")

	return &service.CachedResponse{
		StatusCode: http.StatusAccepted,
		Header:     header,
		Body:       []byte(`{"queued":true,"message":"Opération enregistrée, elle sera synchronisée dès le retour de la connexion"}`),
		FetchedAt:  time.Now(),
	}
}
