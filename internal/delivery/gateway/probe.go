package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/config"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/errors"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"go.uber.org/fx"
)

// ConnectivityProbe periodically pings the upstream origin and triggers a
// sync queue drain pass whenever connectivity is observed, mirroring the
// browser "online" event that wakes the background sync.
type ConnectivityProbe struct {
	interval time.Duration
	upstream service.UpstreamClient
	syncUC   usecase.SyncUsecase
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	online bool
}

// ProbeParams holds dependencies for the connectivity probe, injected by Fx
type ProbeParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Upstream service.UpstreamClient
	SyncUC   usecase.SyncUsecase
	Logger   *slog.Logger
}

// NewConnectivityProbe creates the probe and hooks it into the Fx lifecycle.
func NewConnectivityProbe(params ProbeParams) *ConnectivityProbe {
	probe := &ConnectivityProbe{
		interval: params.Config.Gateway.ProbeInterval,
		upstream: params.Upstream,
		syncUC:   params.SyncUC,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())
			probe.cancel = cancel
			go probe.run(runCtx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			probe.cancel()
			select {
			case <-probe.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return probe
}

func (p *ConnectivityProbe) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Probe immediately on start so a queue built up while the gateway was
	// down drains without waiting for the first tick.
	p.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *ConnectivityProbe) probe(ctx context.Context) {
	err := p.upstream.Ping(ctx)
	if err != nil {
		if p.online {
			p.logger.Warn("Upstream connectivity lost", slog.Any("error", err))
		}
		p.online = false

		return
	}

	if !p.online {
		p.logger.Info("Upstream connectivity established")
	}
	p.online = true

	event, err := p.syncUC.Drain(ctx)
	if err != nil {
		// Another drain pass already running is not a failure.
		if errors.Is(err, domainerrors.ErrSyncDrainInProgress) {
			return
		}
		p.logger.Error("Sync drain pass failed", slog.Any("error", err))

		return
	}

	if event.Attempted > 0 {
		p.logger.Info("Sync drain pass completed",
			slog.Int("attempted", event.Attempted),
			slog.Int("succeeded", event.Succeeded),
			slog.Int("failed", event.Failed),
			slog.Int64("remaining", event.Remaining),
		)
	}
}
