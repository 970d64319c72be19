package cache

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestBlobCache(t *testing.T, version string) *blobCache {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobCache{
		bucket:  bucket,
		version: version,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newCachedResponse(body string) *service.CachedResponse {
	header := http.Header{}
	header.Set("Content-Type", "text/html; charset=utf-8")

	return &service.CachedResponse{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       []byte(body),
		FetchedAt:  time.Now().Truncate(time.Second),
	}
}

func TestBlobCache_PutAndGet(t *testing.T) {
	c := newTestBlobCache(t, "v1")
	ctx := context.Background()

	stored := newCachedResponse("<h1>Accueil</h1>")
	require.NoError(t, c.Put(ctx, "runtime-v1", "GET /produits?page=2", stored))

	loaded, err := c.Get(ctx, "runtime-v1", "GET /produits?page=2")

	require.NoError(t, err)
	assert.Equal(t, stored.StatusCode, loaded.StatusCode)
	assert.Equal(t, stored.Body, loaded.Body)
	assert.Equal(t, "text/html; charset=utf-8", loaded.Header.Get("Content-Type"))
}

func TestBlobCache_GetMiss(t *testing.T) {
	c := newTestBlobCache(t, "v1")

	loaded, err := c.Get(context.Background(), "runtime-v1", "GET /absent")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.Nil(t, loaded)
}

func TestBlobCache_GenerationsAreIsolated(t *testing.T) {
	c := newTestBlobCache(t, "v1")
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "shell-v1", "GET /", newCachedResponse("shell")))

	_, err := c.Get(ctx, "runtime-v1", "GET /")

	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestBlobCache_ListGenerations(t *testing.T) {
	c := newTestBlobCache(t, "v1")
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "shell-v1", "GET /", newCachedResponse("a")))
	require.NoError(t, c.Put(ctx, "runtime-v1", "GET /produits", newCachedResponse("b")))
	require.NoError(t, c.Put(ctx, "runtime-v1", "GET /offline.html", newCachedResponse("c")))

	generations, err := c.ListGenerations(ctx)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"shell-v1", "runtime-v1"}, generations)
}

func TestBlobCache_ActivateEvictsStaleGenerations(t *testing.T) {
	c := newTestBlobCache(t, "v2")
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "shell-v1", "GET /", newCachedResponse("old shell")))
	require.NoError(t, c.Put(ctx, "runtime-v1", "GET /produits", newCachedResponse("old runtime")))
	require.NoError(t, c.Put(ctx, "shell-v2", "GET /", newCachedResponse("new shell")))

	require.NoError(t, c.Activate(ctx))

	generations, err := c.ListGenerations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"shell-v2"}, generations)

	// The surviving generation's entries are untouched.
	loaded, err := c.Get(ctx, "shell-v2", "GET /")
	require.NoError(t, err)
	assert.Equal(t, []byte("new shell"), loaded.Body)
}
