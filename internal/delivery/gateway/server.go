// Package gateway contains the HTTP delivery for the offline edge gateway.
// The gateway sits between the marketplace PWA and the API origin, replaying
// the service worker's caching strategies server-side.
package gateway

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/delivery"
	"github.com/BeMaTech82/hortago/internal/delivery/gateway/handler"
	httpmiddleware "github.com/BeMaTech82/hortago/internal/delivery/http/middleware"
	sharedmiddleware "github.com/BeMaTech82/hortago/internal/delivery/middleware"
	"github.com/BeMaTech82/hortago/internal/domain/lifecycle"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type gatewayServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the gateway server, injected by Fx
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	GatewayUC      usecase.GatewayUsecase
	GatewayHandler *handler.GatewayHandler
	SyncHandler    *handler.SyncHandler
	Probe          *ConnectivityProbe
}

// NewServer creates the edge gateway HTTP server. Activation and shell
// precaching run on startup, before any request is served.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(params.Logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Internal endpoints, never proxied upstream
	e.GET("/internal/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	e.POST("/internal/sync", params.SyncHandler.Drain)
	e.GET("/internal/sync/pending", params.SyncHandler.Pending)

	// Everything else is intercepted and routed by strategy
	e.Any("/*", params.GatewayHandler.Handle)

	srv := &gatewayServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.GatewayUC.Activate(ctx); err != nil {
				return errors.Wrap(err, "cache activation failed")
			}

			// Precache failures are logged per entry and never block startup.
			return params.GatewayUC.PrecacheShell(ctx)
		},
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the gateway HTTP server
func (s *gatewayServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting gateway HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the gateway server
func (s *gatewayServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down gateway HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
