// Package cache implements the gateway response cache on top of a blob bucket.
package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers for local development and on-disk persistence.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobCache implements service.ResponseCache on a gocloud blob bucket.
// Entries live under "<generation>/<encoded key>"; a generation name embeds
// the cache version, so activation only has to compare name suffixes.
type blobCache struct {
	bucket  *blob.Bucket
	version string
	logger  *slog.Logger
}

// BlobCacheParams holds dependencies for the response cache, injected by Fx
type BlobCacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobCache opens the configured bucket and returns a ResponseCache.
func NewBlobCache(params BlobCacheParams) (service.ResponseCache, error) {
	cfg := params.Config.Gateway

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open cache bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Response cache bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("cache_version", cfg.CacheVersion),
	)

	return &blobCache{
		bucket:  bucket,
		version: cfg.CacheVersion,
		logger:  params.Logger,
	}, nil
}

// Get retrieves the snapshot for a key, or service.ErrCacheMiss.
func (c *blobCache) Get(ctx context.Context, generation, key string) (*service.CachedResponse, error) {
	data, err := c.bucket.ReadAll(ctx, blobKey(generation, key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read cache entry")
	}

	var response service.CachedResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, errors.Wrap(err, "failed to decode cache entry")
	}

	return &response, nil
}

// Put stores a snapshot. WriteAll commits the blob atomically, so a reader
// never observes a partially written entry.
func (c *blobCache) Put(ctx context.Context, generation, key string, response *service.CachedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return errors.Wrap(err, "failed to encode cache entry")
	}

	if err := c.bucket.WriteAll(ctx, blobKey(generation, key), data, nil); err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}

	return nil
}

// Activate deletes every generation whose version tag differs from the
// current one. Entries of the surviving generations are untouched.
func (c *blobCache) Activate(ctx context.Context) error {
	generations, err := c.ListGenerations(ctx)
	if err != nil {
		return err
	}

	suffix := "-" + c.version
	for _, generation := range generations {
		if strings.HasSuffix(generation, suffix) {
			continue
		}

		if err := c.deleteGeneration(ctx, generation); err != nil {
			return err
		}

		c.logger.Info("Stale cache generation deleted",
			slog.String("generation", generation),
			slog.String("cache_version", c.version),
		)
	}

	return nil
}

// ListGenerations enumerates the generations currently present.
func (c *blobCache) ListGenerations(ctx context.Context) ([]string, error) {
	iter := c.bucket.List(&blob.ListOptions{Delimiter: "/"})

	var generations []string
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list cache generations")
		}
		if obj.IsDir {
			generations = append(generations, strings.TrimSuffix(obj.Key, "/"))
		}
	}

	return generations, nil
}

func (c *blobCache) deleteGeneration(ctx context.Context, generation string) error {
	iter := c.bucket.List(&blob.ListOptions{Prefix: generation + "/"})

	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to list generation entries")
		}

		if err := c.bucket.Delete(ctx, obj.Key); err != nil {
			return errors.Wrapf(err, "failed to delete cache entry %s", obj.Key)
		}
	}

	return nil
}

// blobKey builds the bucket key for a cache entry. The request key is
// URL-safe encoded so paths and query strings never collide with the
// generation delimiter.
func blobKey(generation, key string) string {
	return generation + "/" + base64.RawURLEncoding.EncodeToString([]byte(key))
}

// Module provides the response cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBlobCache),
)
