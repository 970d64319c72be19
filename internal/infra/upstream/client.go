// Package upstream implements the bounded HTTP client the gateway uses to
// reach the marketplace API origin.
package upstream

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/pkg/errors"
)

// httpClient implements service.UpstreamClient. Every request runs under the
// configured fetch timeout; on expiry the transport aborts the request and an
// error is returned, never a partial response.
type httpClient struct {
	origin  string
	timeout time.Duration
	client  *http.Client
}

// NewClient is the constructor for the upstream HTTP client.
func NewClient(cfg *config.Config) service.UpstreamClient {
	return &httpClient{
		origin:  strings.TrimSuffix(cfg.Gateway.APIOrigin, "/"),
		timeout: cfg.Gateway.FetchTimeout,
		client:  &http.Client{Timeout: cfg.Gateway.FetchTimeout},
	}
}

// Do forwards the request and snapshots the full response.
func (c *httpClient) Do(ctx context.Context, req *service.UpstreamRequest) (*service.CachedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.url(req.Path), body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build upstream request")
	}
	for key, values := range req.Header {
		httpReq.Header[key] = values
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "upstream fetch failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upstream response")
	}

	return &service.CachedResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       respBody,
		FetchedAt:  time.Now(),
	}, nil
}

// Ping probes upstream connectivity against the health endpoint.
func (c *httpClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/health"), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build health request")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "upstream unreachable")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("upstream health returned status %d", resp.StatusCode)
	}

	return nil
}

// url resolves a request target. A path already carrying a scheme is a
// foreign-origin pass-through target and is used verbatim; everything else is
// resolved against the API origin.
func (c *httpClient) url(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.origin + path
}
