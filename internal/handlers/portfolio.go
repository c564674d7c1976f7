package handlers

import (
	"log"
	"net/http"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// GetPortfolioSummary handles GET /api/portfolio/summary.
// A store failure is logged and an all-zero summary served so the
// dashboard renders empty rather than erroring.
func (h *Handler) GetPortfolioSummary(c *gin.Context) {
	summary, err := h.svc.PortfolioSummary()
	if err != nil {
		log.Println("portfolio summary failed:", err)
		c.JSON(http.StatusOK, models.PortfolioSummary{})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAssetAllocation handles GET /api/portfolio/allocation
func (h *Handler) GetAssetAllocation(c *gin.Context) {
	slices, err := h.svc.AssetAllocation()
	if err != nil {
		log.Println("asset allocation failed:", err)
		c.JSON(http.StatusOK, gin.H{"allocation": []models.AllocationSlice{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allocation": slices})
}

// GetPNLAnalytics handles GET /api/portfolio/pnl.
// Same defaulting as the summary: failures render as zero analytics.
func (h *Handler) GetPNLAnalytics(c *gin.Context) {
	analytics, err := h.svc.PNLAnalytics()
	if err != nil {
		log.Println("pnl analytics failed:", err)
		c.JSON(http.StatusOK, models.PNLAnalytics{})
		return
	}
	c.JSON(http.StatusOK, analytics)
}
