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

// cashRegisterHandler handles HTTP requests related to register sessions.
type cashRegisterHandler struct {
	registerService portssvc.CashRegisterSvcFacade
}

// newCashRegisterHandler creates a new cashRegisterHandler.
func newCashRegisterHandler(rs portssvc.CashRegisterSvcFacade) *cashRegisterHandler {
	return &cashRegisterHandler{registerService: rs}
}

// registerCashRegisterRoutes registers routes related to register sessions.
func registerCashRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.CashRegisterSvcFacade) {
	h := newCashRegisterHandler(registerService)

	registers := rg.Group("/registers")
	{
		registers.POST("/open", h.openRegister)
		registers.GET("/open", h.getOpenRegister)
		registers.GET("/:id", h.getRegister)
		registers.POST("/:id/movements", h.postMovement)
		registers.GET("/:id/movements", h.listMovements)
		registers.POST("/:id/close", h.closeRegister)
	}
}

func (h *cashRegisterHandler) openRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	register, err := h.registerService.OpenRegister(c.Request.Context(), req.OpeningAmount, actorID(req.UserID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegisterAlreadyOpen):
			logger.Warn("Register open rejected, one is already open")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to open register", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open register"})
		}
		return
	}

	logger.Info("Register opened", slog.String("register_id", register.RegisterID))
	c.JSON(http.StatusCreated, dto.ToCashRegisterResponse(register))
}

func (h *cashRegisterHandler) getOpenRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	register, err := h.registerService.FindOpenRegister(c.Request.Context())
	if err != nil {
		logger.Error("Failed to find open register", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve open register"})
		return
	}
	if register == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No register is currently open"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}

func (h *cashRegisterHandler) getRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registerID := c.Param("id")

	register, err := h.registerService.GetRegister(c.Request.Context(), registerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Register not found"})
		} else {
			logger.Error("Failed to get register", slog.String("error", err.Error()), slog.String("register_id", registerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve register"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}

func (h *cashRegisterHandler) postMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registerID := c.Param("id")

	var req dto.PostCashMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.registerService.PostMovement(c.Request.Context(), registerID, req.Type, req.Amount, req.Category, actorID(req.UserID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegisterClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Register not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to post cash movement", slog.String("error", err.Error()), slog.String("register_id", registerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record movement"})
		}
		return
	}

	logger.Info("Cash movement recorded", slog.String("movement_id", movement.MovementID), slog.String("register_id", registerID))
	c.JSON(http.StatusCreated, dto.ToCashMovementResponse(movement))
}

func (h *cashRegisterHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registerID := c.Param("id")

	movements, err := h.registerService.ListMovements(c.Request.Context(), registerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Register not found"})
		} else {
			logger.Error("Failed to list register movements", slog.String("error", err.Error()), slog.String("register_id", registerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movements"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"movements": dto.ToListCashMovementResponse(movements)})
}

func (h *cashRegisterHandler) closeRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	registerID := c.Param("id")

	var req dto.CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.registerService.CloseRegister(c.Request.Context(), registerID, req.CountedAmount, actorID(req.UserID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegisterAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Register not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close register", slog.String("error", err.Error()), slog.String("register_id", registerID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close register"})
		}
		return
	}

	logger.Info("Register closed", slog.String("register_id", registerID), slog.String("discrepancy", report.Discrepancy.String()))
	c.JSON(http.StatusOK, dto.ToClosingReportResponse(report))
}
