package service

import (
	"context"
	"net/http"
)

// UpstreamRequest is a request the gateway forwards to the upstream API origin.
type UpstreamRequest struct {
	Method string
	Path   string // Path plus raw query, relative to the upstream origin.
	Header http.Header
	Body   []byte
}

// UpstreamClient performs bounded fetches against the upstream API origin.
// Every call is subject to the configured fetch timeout; on expiry the
// in-flight request is aborted and an error returned, never a partial response.
type UpstreamClient interface {
	// Do forwards the request and snapshots the full response.
	Do(ctx context.Context, req *UpstreamRequest) (*CachedResponse, error)

	// Ping probes upstream connectivity, typically against a health endpoint.
	Ping(ctx context.Context) error
}
