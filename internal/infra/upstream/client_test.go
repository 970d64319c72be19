package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(originURL string) service.UpstreamClient {
	return NewClient(&config.Config{
		Gateway: &config.GatewayConfig{
			APIOrigin:    originURL,
			FetchTimeout: 2 * time.Second,
		},
	})
}

func TestClientDo_ResolvesRelativePathAgainstOrigin(t *testing.T) {
	var gotURI string
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))
	defer origin.Close()

	c := newTestClient(origin.URL)
	resp, err := c.Do(context.Background(), &service.UpstreamRequest{
		Method: http.MethodGet,
		Path:   "/api/v1/products?page=2",
		Header: http.Header{},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, "/api/v1/products?page=2", gotURI)
}

func TestClientDo_AbsoluteURLBypassesOrigin(t *testing.T) {
	// A pass-through target on another origin must be fetched verbatim and
	// never be resolved against the API origin.
	var foreignURI string
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignURI = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("lib")) //nolint:errcheck
	}))
	defer foreign.Close()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("API origin must not receive the foreign request, got %s", r.URL.RequestURI())
	}))
	defer origin.Close()

	c := newTestClient(origin.URL)
	resp, err := c.Do(context.Background(), &service.UpstreamRequest{
		Method: http.MethodGet,
		Path:   foreign.URL + "/lib.js?v=3",
		Header: http.Header{},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK())
	assert.Equal(t, []byte("lib"), resp.Body)
	assert.Equal(t, "/lib.js?v=3", foreignURI)
}

func TestClientDo_ForwardsHeadersAndBody(t *testing.T) {
	var gotContentType, gotBody string
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf) //nolint:errcheck
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
	}))
	defer origin.Close()

	header := http.Header{}
	header.Set("Content-Type", "application/json")

	c := newTestClient(origin.URL)
	resp, err := c.Do(context.Background(), &service.UpstreamRequest{
		Method: http.MethodPost,
		Path:   "/api/v1/orders",
		Header: header,
		Body:   []byte(`{"product_id":42}`),
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"product_id":42}`, gotBody)
}

func TestClientPing(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer origin.Close()

	c := newTestClient(origin.URL)

	require.NoError(t, c.Ping(context.Background()))
}

func TestClientPing_Unreachable(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer origin.Close()

	c := newTestClient(origin.URL)

	require.Error(t, c.Ping(context.Background()))
}
