package service

import (
	"context"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
)

// Location fix sources.
const (
	// LocationSourceIP marks a fix resolved through the IP lookup service.
	LocationSourceIP = "ip"
	// LocationSourceDevice marks a fix taken from the configured device position.
	LocationSourceDevice = "device"
)

// LocationFix is a best-effort resolved position together with how it was obtained.
type LocationFix struct {
	Coordinate entity.Coordinate `json:"coordinate"`
	Source     string            `json:"source"` // LocationSourceIP or LocationSourceDevice.
	ResolvedAt time.Time         `json:"resolved_at"`
}

// Geolocator resolves a best-effort position for the current host.
// Implementations prefer an IP-based lookup and fall back to the device
// position, both bounded by a timeout; a recent fix may be served from cache.
type Geolocator interface {
	Locate(ctx context.Context) (*LocationFix, error)
}
