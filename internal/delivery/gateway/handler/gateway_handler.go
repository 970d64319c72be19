// Package handler contains the HTTP handlers for the offline edge gateway.
package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Response headers describing how the gateway served a request.
const (
	HeaderGatewaySource = "X-Gateway-Source"
	HeaderGatewayClass  = "X-Gateway-Class"
)

// GatewayHandler proxies every intercepted request through the routing
// strategies of the gateway usecase.
type GatewayHandler struct {
	uc     usecase.GatewayUsecase
	logger *slog.Logger
}

// NewGatewayHandler is the constructor for GatewayHandler, injected by Fx.
func NewGatewayHandler(uc usecase.GatewayUsecase, logger *slog.Logger) *GatewayHandler {
	return &GatewayHandler{
		uc:     uc,
		logger: logger,
	}
}

// Handle routes one intercepted request. The strategy decides whether the
// answer comes from the network, the cache, the offline fallback, or, for a
// failed mutation, an acknowledgement that the request was queued.
func (h *GatewayHandler) Handle(c echo.Context) error {
	httpReq := c.Request()

	var body []byte
	if httpReq.Body != nil {
		var err error
		body, err = io.ReadAll(httpReq.Body)
		if err != nil {
			return errors.Wrap(err, "failed to read request body")
		}
	}

	path := httpReq.URL.Path
	if httpReq.URL.RawQuery != "" {
		path += "?" + httpReq.URL.RawQuery
	}

	result, err := h.uc.Route(c.Request().Context(), &service.UpstreamRequest{
		Method: httpReq.Method,
		Path:   path,
		Header: httpReq.Header.Clone(),
		Body:   body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return writeGatewayResponse(c, result)
}

func writeGatewayResponse(c echo.Context, result *usecase.GatewayResponse) error {
	header := c.Response().Header()
	for key, values := range result.Response.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	header.Set(HeaderGatewaySource, result.Source)
	header.Set(HeaderGatewayClass, result.Class.String())

	contentType := result.Response.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(result.Response.Body)
	}

	return c.Blob(result.Response.StatusCode, contentType, result.Response.Body)
}
