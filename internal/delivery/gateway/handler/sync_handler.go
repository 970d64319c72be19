package handler

import (
	"log/slog"
	"net/http"

	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SyncHandler exposes the background sync queue over the gateway's internal
// endpoints, mirroring the manual "synchroniser maintenant" action of the UI.
type SyncHandler struct {
	uc     usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler, injected by Fx.
func NewSyncHandler(uc usecase.SyncUsecase, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		uc:     uc,
		logger: logger,
	}
}

// Drain triggers a drain pass and reports its outcome.
func (h *SyncHandler) Drain(c echo.Context) error {
	event, err := h.uc.Drain(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, event)
}

// Pending lists the queued tasks in replay order.
func (h *SyncHandler) Pending(c echo.Context) error {
	tasks, err := h.uc.Pending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"count": len(tasks),
		"tasks": tasks,
	})
}
