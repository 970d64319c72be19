package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Matching: &config.MatchingConfig{
			DefaultRadiusKm: 10,
			MaxRadiusKm:     100,
		},
		Gateway: &config.GatewayConfig{
			APIOrigin:           testAPIOrigin,
			FetchTimeout:        2 * time.Second,
			OfflineFallbackPath: "/offline.html",
			CacheVersion:        "v1",
			ShellManifest:       []string{"/", "/offline.html", "/assets/app.js"},
		},
		Sync: &config.SyncConfig{
			BackoffBase: 5 * time.Second,
			BackoffCap:  15 * time.Minute,
		},
	}
}
