package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/BeMaTech82/hortago/internal/delivery/http/response"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultPageSize = 20

// ProductHandler holds dependencies for product listing handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Category    string     `json:"category" validate:"required"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity" validate:"gte=0"`
	Unit        string     `json:"unit" validate:"max=20"`
	Price       float64    `json:"price" validate:"gte=0"`
	HarvestDate *time.Time `json:"harvest_date"`
}

// CreateProduct publishes a new listing for the authenticated seller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Données de produit invalides")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), sellerID, &usecase.CreateProductInput{
		Name:        req.Name,
		Category:    entity.Category(req.Category),
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Price:       req.Price,
		HarvestDate: req.HarvestDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Produit publié")
}

// GetProduct retrieves a single listing.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := parseProductID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identifiant de produit invalide")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Produit récupéré")
}

// ListProducts retrieves listings matching the query filters, newest first.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		Category: entity.Category(c.QueryParam("category")),
		Status:   entity.ProductStatus(c.QueryParam("status")),
		Keywords: c.QueryParam("q"),
	}
	if sellerParam := c.QueryParam("seller_id"); sellerParam != "" {
		sellerID, err := uuid.Parse(sellerParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Identifiant de vendeur invalide")
		}
		filter.SellerID = sellerID
	}

	limit, offset := parsePagination(c)

	// With lat/lng the listing is restricted to products around that point.
	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" {
		return h.listNearby(c, filter, limit, offset)
	}

	products, err := h.uc.ListProducts(c.Request().Context(), filter, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Produits récupérés")
}

func (h *ProductHandler) listNearby(c echo.Context, filter repository.ProductFilter, limit, offset int) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Coordonnées invalides")
	}

	var radiusKm float64
	if radiusParam := c.QueryParam("radius_km"); radiusParam != "" {
		parsed, err := strconv.ParseFloat(radiusParam, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Rayon invalide")
		}
		radiusKm = parsed
	}

	center := entity.Coordinate{Latitude: lat, Longitude: lng}
	products, err := h.uc.ListNearbyProducts(c.Request().Context(), center, radiusKm, filter, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Produits récupérés")
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available sold unavailable"`
}

// UpdateProductStatus transitions a listing's lifecycle status.
func (h *ProductHandler) UpdateProductStatus(c echo.Context) error {
	sellerID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Jeton invalide")
	}

	productID, err := parseProductID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identifiant de produit invalide")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Statut invalide")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.UpdateProductStatus(c.Request().Context(), sellerID, productID, entity.ProductStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": req.Status}, "Statut mis à jour")
}

// GenerateStandQR returns a printable PNG QR code for a listing.
func (h *ProductHandler) GenerateStandQR(c echo.Context) error {
	productID, err := parseProductID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Identifiant de produit invalide")
	}

	pngBytes, err := h.uc.GenerateStandQR(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", pngBytes)
}

func parseProductID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parsePagination(c echo.Context) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}
