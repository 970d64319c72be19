// Package geoip resolves a best-effort position for the host running the
// marketplace, preferring an IP lookup service over the configured device
// position.
package geoip

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"

	"github.com/pkg/errors"
)

// ipLookupResponse is the subset of the IP geolocation payload we consume.
type ipLookupResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// locator implements service.Geolocator. A resolved fix is cached and served
// again while younger than the configured maximum age, so repeated lookups
// do not hammer the IP service.
type locator struct {
	cfg    *config.GeolocationConfig
	client *http.Client
	logger *slog.Logger

	mu      sync.Mutex
	lastFix *service.LocationFix
}

// NewLocator is the constructor for the IP-first geolocator.
func NewLocator(cfg *config.Config, logger *slog.Logger) service.Geolocator {
	return &locator{
		cfg:    cfg.Geolocation,
		client: &http.Client{Timeout: cfg.Geolocation.Timeout},
		logger: logger,
	}
}

// Locate resolves a position. The IP lookup runs first under the configured
// timeout; on any failure the device position takes over. Only an invalid
// device position makes Locate fail.
func (l *locator) Locate(ctx context.Context) (*service.LocationFix, error) {
	if fix := l.cachedFix(); fix != nil {
		return fix, nil
	}

	fix, err := l.locateByIP(ctx)
	if err != nil {
		l.logger.Warn("IP geolocation failed, falling back to device position",
			slog.String("endpoint", l.cfg.IPEndpoint),
			slog.Any("error", err),
		)

		fix, err = l.deviceFix()
		if err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	l.lastFix = fix
	l.mu.Unlock()

	return fix, nil
}

func (l *locator) cachedFix() *service.LocationFix {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastFix == nil {
		return nil
	}
	if time.Since(l.lastFix.ResolvedAt) > l.cfg.MaxFixAge {
		l.lastFix = nil

		return nil
	}

	return l.lastFix
}

func (l *locator) locateByIP(ctx context.Context) (*service.LocationFix, error) {
	if l.cfg.IPEndpoint == "" {
		return nil, errors.New("no IP geolocation endpoint configured")
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.IPEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build IP lookup request")
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "IP lookup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("IP lookup returned status %d", resp.StatusCode)
	}

	var payload ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode IP lookup response")
	}

	coordinate := entity.Coordinate{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
	}
	if !coordinate.IsValid() {
		return nil, errors.New("IP lookup returned an invalid coordinate")
	}

	return &service.LocationFix{
		Coordinate: coordinate,
		Source:     service.LocationSourceIP,
		ResolvedAt: time.Now(),
	}, nil
}

func (l *locator) deviceFix() (*service.LocationFix, error) {
	coordinate := entity.Coordinate{
		Latitude:  l.cfg.DeviceLatitude,
		Longitude: l.cfg.DeviceLongitude,
	}
	if !coordinate.IsValid() || (coordinate.Latitude == 0 && coordinate.Longitude == 0) {
		return nil, errors.New("no usable device position configured")
	}

	return &service.LocationFix{
		Coordinate: coordinate,
		Source:     service.LocationSourceDevice,
		ResolvedAt: time.Now(),
	}, nil
}
