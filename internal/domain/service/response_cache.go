package service

import (
	"context"
	"net/http"
	"time"

	"github.com/BeMaTech82/hortago/internal/errors"
)

// ErrCacheMiss is returned by ResponseCache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// CachedResponse is a stored response snapshot plus its retrieval timestamp.
type CachedResponse struct {
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header"`
	Body       []byte      `json:"body"`
	FetchedAt  time.Time   `json:"fetched_at"`
}

// OK reports whether the response carries a cacheable success status.
func (r *CachedResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ResponseCache stores response snapshots keyed by normalized request identity,
// partitioned into named generations. A generation embeds the cache version;
// dropping generations whose version tag is stale is the sole eviction
// mechanism. There is no TTL and no LRU.
type ResponseCache interface {
	// Get retrieves the snapshot for a key, or ErrCacheMiss.
	Get(ctx context.Context, generation, key string) (*CachedResponse, error)

	// Put stores a snapshot. A reader never observes a partially written entry.
	Put(ctx context.Context, generation, key string, response *CachedResponse) error

	// Activate deletes every generation whose version tag differs from the
	// current one. Called once on gateway start, mirroring worker activation.
	Activate(ctx context.Context) error

	// ListGenerations enumerates the generations currently present.
	ListGenerations(ctx context.Context) ([]string, error)
}
