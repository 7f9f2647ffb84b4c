package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmaldonadov/retail_backoffice_app/internal/apperrors"
	portssvc "github.com/dmaldonadov/retail_backoffice_app/internal/core/ports/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/core/services"
	"github.com/dmaldonadov/retail_backoffice_app/internal/dto"
	"github.com/dmaldonadov/retail_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles HTTP requests related to the stock ledger.
type stockHandler struct {
	stockService portssvc.StockLedgerSvc
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockLedgerSvc) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to stock movements.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockLedgerSvc) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.POST("/:productID/adjustments", h.adjustStock)
		stock.POST("/:productID/intakes", h.recordIntake)
		stock.POST("/:productID/returns", h.recordReturn)
		stock.GET("/:productID/movements", h.listMovements)
	}
}

// writeStockError maps stock ledger errors to HTTP responses.
func writeStockError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var insufficientErr *services.InsufficientStockError
	switch {
	case errors.As(err, &insufficientErr):
		c.JSON(http.StatusConflict, gin.H{"error": insufficientErr.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Stock was modified concurrently. Please retry."})
	default:
		logger.Error("Stock operation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.stockService.Adjust(c.Request.Context(), productID, req.Quantity, req.Reason, req.AllowNegative, actorID(req.UserID))
	if err != nil {
		writeStockError(c, logger, err, "adjust stock")
		return
	}

	logger.Info("Stock adjusted", slog.String("product_id", productID), slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

func (h *stockHandler) recordIntake(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.StockIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StockIntake", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.stockService.RecordIntake(c.Request.Context(), productID, req.Quantity, req.SupplierID, actorID(req.UserID))
	if err != nil {
		writeStockError(c, logger, err, "record intake")
		return
	}

	logger.Info("Stock intake recorded", slog.String("product_id", productID), slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

func (h *stockHandler) recordReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.StockReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StockReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.stockService.RecordReturn(c.Request.Context(), productID, req.Quantity, req.SaleID, actorID(req.UserID))
	if err != nil {
		writeStockError(c, logger, err, "record return")
		return
	}

	logger.Info("Stock return recorded", slog.String("product_id", productID), slog.String("movement_id", movement.MovementID))
	c.JSON(http.StatusCreated, dto.ToStockMovementResponse(movement))
}

func (h *stockHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var params dto.ListStockMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListStockMovements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	movements, nextToken, err := h.stockService.ListMovementsByProduct(c.Request.Context(), productID, params.Limit, params.NextToken)
	if err != nil {
		writeStockError(c, logger, err, "list stock movements")
		return
	}

	c.JSON(http.StatusOK, dto.ListStockMovementsResponse{
		Movements: dto.ToListStockMovementResponse(movements),
		NextToken: nextToken,
	})
}
