package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/dto"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for products and combos.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
	}

	combos := rg.Group("/combos")
	{
		combos.GET("", h.listCombos)
		combos.GET("/:id", h.getCombo)
	}
}

func (h *catalogHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	product, err := h.catalogService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product", slog.String("error", err.Error()), slog.String("product_id", productID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToListProductResponse(products)})
}

func (h *catalogHandler) getCombo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	comboID := c.Param("id")

	combo, err := h.catalogService.GetComboByID(c.Request.Context(), comboID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		} else {
			logger.Error("Failed to get combo", slog.String("error", err.Error()), slog.String("combo_id", comboID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve combo"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToComboResponse(combo))
}

func (h *catalogHandler) listCombos(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCombos", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	combos, err := h.catalogService.ListCombos(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list combos", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve combos"})
		return
	}

	c.JSON(http.StatusOK, dto.ListCombosResponse{Combos: dto.ToListComboResponse(combos)})
}
