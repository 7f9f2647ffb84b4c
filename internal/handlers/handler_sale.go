package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/domain"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/dto"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// RegisterSaleRoutes registers routes related to sales.
func RegisterSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.commitSale)
		sales.GET("/:id", h.getSale)
		sales.GET("", h.listSales)
	}
}

func (h *saleHandler) commitSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommitSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CommitSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := actorID(req.UserID)
	logger.Info("Received request to commit sale", slog.Int("item_count", len(req.Items)), slog.String("payment_method", string(req.PaymentMethod)))

	sale := domain.Sale{
		PaymentMethod: req.PaymentMethod,
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}
	sale.Items = make([]domain.SaleItem, len(req.Items))
	for i, item := range req.Items {
		sale.Items[i] = domain.SaleItem{
			ItemKind:  item.ItemKind,
			ItemID:    item.ItemID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	committed, err := h.saleService.CommitSale(c.Request.Context(), sale, userID)
	if err != nil {
		var insufficientErr *services.InsufficientStockError
		switch {
		case errors.As(err, &insufficientErr):
			logger.Warn("Sale rejected for insufficient stock", slog.String("product_id", insufficientErr.ProductID))
			c.JSON(http.StatusConflict, gin.H{"error": insufficientErr.Error()})
		case errors.Is(err, services.ErrComboNested):
			logger.Warn("Sale rejected for nested combo", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrComboInactive), errors.Is(err, services.ErrEmptySale), errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error committing sale", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Unknown item in sale", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Sale commit exhausted retries", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": "Sale could not be committed due to concurrent updates. Please retry."})
		default:
			logger.Error("Failed to commit sale", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit sale"})
		}
		return
	}

	logger.Info("Sale committed successfully", slog.String("sale_id", committed.SaleID))
	c.JSON(http.StatusCreated, dto.ToSaleResponse(committed))
}

func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Sale not found", slog.String("sale_id", saleID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		} else {
			logger.Error("Failed to get sale", slog.String("error", err.Error()), slog.String("sale_id", saleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sale"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	sales, nextToken, err := h.saleService.ListSales(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ListSalesResponse{
		Sales:     dto.ToListSaleResponse(sales),
		NextToken: nextToken,
	})
}
