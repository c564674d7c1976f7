package handlers

import (
	"errors"
	"net/http"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/atharvakonge/investment-tracker/internal/portfolio"
	"github.com/atharvakonge/investment-tracker/internal/store"
	"github.com/gin-gonic/gin"
)

// Handler exposes the portfolio engine over HTTP.
type Handler struct {
	svc   *portfolio.Service
	exits *ExitProcessor
}

// NewHandler wires the engine and the exit processor into a handler set.
func NewHandler(svc *portfolio.Service, exits *ExitProcessor) *Handler {
	return &Handler{svc: svc, exits: exits}
}

// AddStock handles POST /api/stocks
func (h *Handler) AddStock(c *gin.Context) {
	var req models.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.svc.AddStock(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Stock added successfully",
		"stock_id": id,
	})
}

// UpdateStock handles PATCH /api/stocks/:id
func (h *Handler) UpdateStock(c *gin.Context) {
	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateStock(c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated successfully"})
}

// DeleteStock handles DELETE /api/stocks/:id
func (h *Handler) DeleteStock(c *gin.Context) {
	if err := h.svc.DeleteStock(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted successfully"})
}

// ExitStock handles POST /api/stocks/:id/exit. The exit runs through
// the processor queue so concurrent exits of one position serialize.
func (h *Handler) ExitStock(c *gin.Context) {
	var req models.ExitStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.exits.SubmitExit(c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock exited successfully"})
}

// GetActiveStocks handles GET /api/stocks/active
func (h *Handler) GetActiveStocks(c *gin.Context) {
	stocks, err := h.svc.GetActiveStocks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": stocks, "count": len(stocks)})
}

// GetExitedStocks handles GET /api/stocks/exited
func (h *Handler) GetExitedStocks(c *gin.Context) {
	stocks, err := h.svc.GetExitedStocks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": stocks, "count": len(stocks)})
}

// GetAllStocks handles GET /api/stocks
func (h *Handler) GetAllStocks(c *gin.Context) {
	stocks, err := h.svc.GetAllStocks()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": stocks, "count": len(stocks)})
}

// respondError maps engine errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *portfolio.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
