package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/service"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	mockUsecase "github.com/BeMaTech82/hortago/internal/mocks/usecase"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayServiceFixtures struct {
	service   usecase.GatewayUsecase
	cache     *mockService.MockResponseCache
	upstream  *mockService.MockUpstreamClient
	syncQueue *mockUsecase.MockSyncUsecase
}

func createTestGatewayService(t *testing.T) *gatewayServiceFixtures {
	cache := mockService.NewMockResponseCache(t)
	upstream := mockService.NewMockUpstreamClient(t)
	syncQueue := mockUsecase.NewMockSyncUsecase(t)

	svc := NewGatewayService(GatewayServiceParams{
		Cache:     cache,
		Upstream:  upstream,
		SyncQueue: syncQueue,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return &gatewayServiceFixtures{
		service:   svc,
		cache:     cache,
		upstream:  upstream,
		syncQueue: syncQueue,
	}
}

func newGatewayRequest(method, path string, headers map[string]string) *service.UpstreamRequest {
	header := http.Header{}
	for key, value := range headers {
		header.Set(key, value)
	}

	return &service.UpstreamRequest{Method: method, Path: path, Header: header}
}

func cachedHTML(body string) *service.CachedResponse {
	header := http.Header{}
	header.Set("Content-Type", "text/html; charset=utf-8")

	return &service.CachedResponse{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       []byte(body),
		FetchedAt:  time.Now().Add(-time.Minute),
	}
}

func TestGatewayService_Route_NetworkFirstSuccessIsCached(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/api/v1/products", nil)
	resp := okUpstreamResponse()

	fx.upstream.EXPECT().Do(ctx, req).Return(resp, nil)
	fx.cache.EXPECT().Put(ctx, "runtime-v1", "GET /api/v1/products", resp).Return(nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceNetwork, result.Source)
	assert.Equal(t, usecase.ClassAPI, result.Class)
	assert.Equal(t, resp, result.Response)
}

func TestGatewayService_Route_NetworkFirstFallsBackToCache(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/api/v1/products", nil)
	cached := cachedHTML(`[{"id":1}]`)

	fx.upstream.EXPECT().Do(ctx, req).Return(nil, assert.AnError)
	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /api/v1/products").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "runtime-v1", "GET /api/v1/products").Return(cached, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceCache, result.Source)
	assert.Equal(t, cached, result.Response)
}

func TestGatewayService_Route_NavigationOfflineServesFallbackDocument(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/produits", map[string]string{"Sec-Fetch-Dest": "document"})
	offline := cachedHTML("<h1>Vous êtes hors ligne</h1>")

	fx.upstream.EXPECT().Do(ctx, req).Return(nil, assert.AnError)
	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /produits").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "runtime-v1", "GET /produits").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /offline.html").Return(offline, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceFallback, result.Source)
	assert.Equal(t, usecase.ClassNavigation, result.Class)
	assert.Equal(t, offline, result.Response)
}

func TestGatewayService_Route_OfflineWithoutFallbackDocument(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/produits", map[string]string{"Sec-Fetch-Dest": "document"})

	fx.upstream.EXPECT().Do(ctx, req).Return(nil, assert.AnError)
	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /produits").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "runtime-v1", "GET /produits").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /offline.html").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "runtime-v1", "GET /offline.html").Return(nil, service.ErrCacheMiss)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceFallback, result.Source)
	assert.Equal(t, http.StatusServiceUnavailable, result.Response.StatusCode)
	assert.Contains(t, string(result.Response.Body), "Hors ligne")
}

func TestGatewayService_Route_StaleWhileRevalidateServesCache(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/assets/app.js", nil)
	cached := cachedHTML("console.log('hortago')")

	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /assets/app.js").Return(cached, nil)
	// The background refresh may or may not run before the test finishes.
	fx.upstream.EXPECT().Do(mock.Anything, req).Return(okUpstreamResponse(), nil).Maybe()
	fx.cache.EXPECT().Put(mock.Anything, "runtime-v1", "GET /assets/app.js", mock.Anything).Return(nil).Maybe()

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceCache, result.Source)
	assert.Equal(t, usecase.ClassAsset, result.Class)
	assert.Equal(t, cached, result.Response)
}

func TestGatewayService_Route_CacheFirstSkipsNetworkOnHit(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "/images/tomates.webp", nil)
	cached := cachedHTML("binary-ish")

	fx.cache.EXPECT().Get(ctx, "shell-v1", "GET /images/tomates.webp").Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().Get(ctx, "runtime-v1", "GET /images/tomates.webp").Return(cached, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceCache, result.Source)
	assert.Equal(t, usecase.ClassDefault, result.Class)
}

func TestGatewayService_Route_MutationOfflineIsQueued(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodPost, "/api/v1/orders", map[string]string{"Content-Type": "application/json"})
	req.Body = []byte(`{"product_id":42}`)
	task := newQueuedTask(1, http.MethodPost, "/api/v1/orders")

	fx.upstream.EXPECT().Do(ctx, req).Return(nil, assert.AnError)
	fx.syncQueue.EXPECT().Enqueue(ctx, mock.AnythingOfType("*usecase.EnqueueTaskInput")).
		Run(func(_ context.Context, input *usecase.EnqueueTaskInput) {
			assert.Equal(t, http.MethodPost, input.Method)
			assert.Equal(t, "/api/v1/orders", input.Path)
			assert.Equal(t, "application/json", input.ContentType)
			assert.Equal(t, req.Body, input.Body)
		}).
		Return(task, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceQueued, result.Source)
	assert.Equal(t, http.StatusAccepted, result.Response.StatusCode)
	assert.Contains(t, string(result.Response.Body), `"queued":true`)
	assert.Equal(t, task, result.Task)
}

func TestGatewayService_Route_MutationQueueFailureSurfaces(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodPost, "/api/v1/orders", nil)

	fx.upstream.EXPECT().Do(ctx, req).Return(nil, assert.AnError)
	fx.syncQueue.EXPECT().Enqueue(ctx, mock.AnythingOfType("*usecase.EnqueueTaskInput")).Return(nil, assert.AnError)

	result, err := fx.service.Route(ctx, req)

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestGatewayService_Route_MutationSuccessIsNeverCached(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodPost, "/api/v1/orders", nil)
	resp := okUpstreamResponse()

	// No cache expectations: a successful mutation must not touch the cache.
	fx.upstream.EXPECT().Do(ctx, req).Return(resp, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceNetwork, result.Source)
	assert.Equal(t, resp, result.Response)
	assert.Nil(t, result.Task)
}

func TestGatewayService_Route_ForeignOriginPassesThrough(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	req := newGatewayRequest(http.MethodGet, "https://cdn.example.com/lib.js", nil)
	resp := okUpstreamResponse()

	fx.upstream.EXPECT().Do(ctx, req).Return(resp, nil)

	result, err := fx.service.Route(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, usecase.SourceNetwork, result.Source)
	assert.Equal(t, usecase.ClassPassThrough, result.Class)
}

func TestGatewayService_PrecacheShell(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	// The manifest has three entries; the second one fails and is skipped.
	fx.upstream.EXPECT().Do(ctx, mock.AnythingOfType("*service.UpstreamRequest")).
		RunAndReturn(func(_ context.Context, req *service.UpstreamRequest) (*service.CachedResponse, error) {
			if req.Path == "/offline.html" {
				return nil, assert.AnError
			}

			return okUpstreamResponse(), nil
		}).Times(3)
	fx.cache.EXPECT().Put(ctx, "shell-v1", "GET /", mock.Anything).Return(nil)
	fx.cache.EXPECT().Put(ctx, "shell-v1", "GET /assets/app.js", mock.Anything).Return(nil)

	err := fx.service.PrecacheShell(ctx)

	require.NoError(t, err)
}

func TestGatewayService_Activate(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Activate(ctx).Return(nil)
	fx.cache.EXPECT().ListGenerations(ctx).Return([]string{"shell-v1", "runtime-v1"}, nil)

	err := fx.service.Activate(ctx)

	require.NoError(t, err)
}

func TestGatewayService_Activate_Failure(t *testing.T) {
	fx := createTestGatewayService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Activate(ctx).Return(assert.AnError)

	err := fx.service.Activate(ctx)

	require.Error(t, err)
}
