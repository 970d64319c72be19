package impl

import (
	"net/http"
	"testing"

	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/stretchr/testify/assert"
)

const testAPIOrigin = "https://api.hortago.fr"

func newClassifyRequest(method, path string, headers map[string]string) *service.UpstreamRequest {
	header := http.Header{}
	for key, value := range headers {
		header.Set(key, value)
	}

	return &service.UpstreamRequest{Method: method, Path: path, Header: header}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    usecase.RequestClass
	}{
		{
			name: "foreign origin passes through",
			path: "https://cdn.example.com/lib.js",
			want: usecase.ClassPassThrough,
		},
		{
			name:    "document by fetch metadata",
			path:    "/produits",
			headers: map[string]string{"Sec-Fetch-Dest": "document"},
			want:    usecase.ClassNavigation,
		},
		{
			name:    "document by accept header",
			path:    "/produits",
			headers: map[string]string{"Accept": "text/html,application/xhtml+xml"},
			want:    usecase.ClassNavigation,
		},
		{
			name: "api path",
			path: "/api/v1/products?category=Fruits",
			want: usecase.ClassAPI,
		},
		{
			name: "api absolute url on own origin",
			path: "https://api.hortago.fr/api/v1/products",
			want: usecase.ClassAPI,
		},
		{
			name:    "script by fetch metadata",
			path:    "/assets/app",
			headers: map[string]string{"Sec-Fetch-Dest": "script"},
			want:    usecase.ClassAsset,
		},
		{
			name: "script by extension",
			path: "/assets/app.js?v=3",
			want: usecase.ClassAsset,
		},
		{
			name: "stylesheet by extension",
			path: "/assets/app.css",
			want: usecase.ClassAsset,
		},
		{
			name: "image is default",
			path: "/images/tomates.webp",
			want: usecase.ClassDefault,
		},
		{
			name: "unknown path is default",
			path: "/manifest.json",
			want: usecase.ClassDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newClassifyRequest(http.MethodGet, tt.path, tt.headers)
			assert.Equal(t, tt.want, Classify(req, testAPIOrigin))
		})
	}
}

func TestStrategyFor(t *testing.T) {
	assert.Equal(t, usecase.StrategyNone, StrategyFor(usecase.ClassPassThrough))
	assert.Equal(t, usecase.StrategyNetworkFirst, StrategyFor(usecase.ClassNavigation))
	assert.Equal(t, usecase.StrategyNetworkFirst, StrategyFor(usecase.ClassAPI))
	assert.Equal(t, usecase.StrategyStaleWhileRevalidate, StrategyFor(usecase.ClassAsset))
	assert.Equal(t, usecase.StrategyCacheFirst, StrategyFor(usecase.ClassDefault))
}
