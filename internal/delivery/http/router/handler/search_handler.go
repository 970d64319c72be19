package handler

import (
	"log/slog"
	"net/http"

	"github.com/BeMaTech82/hortago/internal/delivery/http/response"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for saved search handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSearchRequest struct {
	Category string   `json:"category"`
	Keywords string   `json:"keywords" validate:"max=255"`
	RadiusKm float64  `json:"radius_km" validate:"gte=0"`
	MaxPrice *float64 `json:"max_price"`
}

// CreateSearch registers a standing interest in nearby produce.
func (h *SearchHandler) CreateSearch(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	var req createSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de recherche invalides")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	search, err := h.uc.CreateSearch(c.Request().Context(), userID, &usecase.CreateSearchInput{
		Category: entity.Category(req.Category),
		Keywords: req.Keywords,
		RadiusKm: req.RadiusKm,
		MaxPrice: req.MaxPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, search, "Recherche enregistrée")
}

// GetUserSearches retrieves every saved search of the authenticated user.
func (h *SearchHandler) GetUserSearches(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	searches, err := h.uc.GetUserSearches(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, searches, "Recherches récupérées")
}

// DeleteSearch removes a saved search owned by the authenticated user.
func (h *SearchHandler) DeleteSearch(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	searchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identifiant de recherche invalide")
	}

	if err := h.uc.DeleteSearch(c.Request().Context(), userID, searchID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Recherche supprimée"}, "Recherche supprimée")
}

// GetUserMatches retrieves the authenticated user's match history.
func (h *SearchHandler) GetUserMatches(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	limit, offset := parsePagination(c)

	matches, err := h.uc.GetUserMatches(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, matches, "Correspondances récupérées")
}
