package impl

import (
	"net/url"
	"path"
	"strings"

	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"
)

// strategyByClass is the total mapping from request class to caching strategy.
// Every class has exactly one strategy; classification happens once per request.
var strategyByClass = map[usecase.RequestClass]usecase.Strategy{
	usecase.ClassPassThrough: usecase.StrategyNone,
	usecase.ClassNavigation:  usecase.StrategyNetworkFirst,
	usecase.ClassAPI:         usecase.StrategyNetworkFirst,
	usecase.ClassAsset:       usecase.StrategyStaleWhileRevalidate,
	usecase.ClassDefault:     usecase.StrategyCacheFirst,
}

// assetExtensions identify script, style and worker assets by path when the
// client sent no fetch metadata.
var assetExtensions = map[string]bool{
	".js":   true,
	".mjs":  true,
	".css":  true,
	".wasm": true,
}

// Classify maps a request to its class, evaluating the rules in priority order:
// foreign origins pass through, documents and API calls go network-first,
// script/style/worker assets go stale-while-revalidate, everything else is
// cache-first.
func Classify(req *service.UpstreamRequest, apiOrigin string) usecase.RequestClass {
	if isForeignOrigin(req.Path, apiOrigin) {
		return usecase.ClassPassThrough
	}

	dest := req.Header.Get("Sec-Fetch-Dest")
	if dest == "document" || (dest == "" && strings.Contains(req.Header.Get("Accept"), "text/html")) {
		return usecase.ClassNavigation
	}

	if isAPIRequest(req.Path, apiOrigin) {
		return usecase.ClassAPI
	}

	switch dest {
	case "script", "style", "worker":
		return usecase.ClassAsset
	}
	if assetExtensions[strings.ToLower(path.Ext(requestPath(req.Path)))] {
		return usecase.ClassAsset
	}

	return usecase.ClassDefault
}

// StrategyFor returns the caching strategy for a request class.
func StrategyFor(class usecase.RequestClass) usecase.Strategy {
	return strategyByClass[class]
}

// isForeignOrigin reports whether an absolute request URL points at a host
// that is neither the gateway itself nor the configured API origin.
// Relative paths always belong to the gateway's own origin.
func isForeignOrigin(rawPath, apiOrigin string) bool {
	if !strings.HasPrefix(rawPath, "http://") && !strings.HasPrefix(rawPath, "https://") {
		return false
	}

	target, err := url.Parse(rawPath)
	if err != nil {
		return true
	}
	api, err := url.Parse(apiOrigin)
	if err != nil {
		return true
	}

	return !strings.EqualFold(target.Host, api.Host)
}

// isAPIRequest reports whether the request addresses the configured API origin.
func isAPIRequest(rawPath, apiOrigin string) bool {
	if strings.HasPrefix(rawPath, "http://") || strings.HasPrefix(rawPath, "https://") {
		return !isForeignOrigin(rawPath, apiOrigin)
	}

	return strings.HasPrefix(rawPath, "/api/")
}

// requestPath strips scheme, host and query from a request path or URL.
func requestPath(rawPath string) string {
	if parsed, err := url.Parse(rawPath); err == nil {
		return parsed.Path
	}

	if i := strings.IndexByte(rawPath, '?'); i >= 0 {
		return rawPath[:i]
	}

	return rawPath
}
