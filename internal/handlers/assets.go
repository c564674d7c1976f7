package handlers

import (
	"net/http"

	"github.com/atharvakonge/investment-tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// AddAsset handles POST /api/assets
func (h *Handler) AddAsset(c *gin.Context) {
	var req models.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := checkTypeFields(req); err != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	id, err := h.svc.AddAsset(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Asset added successfully",
		"asset_id": id,
	})
}

// UpdateAsset handles PATCH /api/assets/:id
func (h *Handler) UpdateAsset(c *gin.Context) {
	var patch models.AssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.UpdateAsset(c.Param("id"), patch); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully"})
}

// DeleteAsset handles DELETE /api/assets/:id
func (h *Handler) DeleteAsset(c *gin.Context) {
	if err := h.svc.DeleteAsset(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

// GetAllAssets handles GET /api/assets
func (h *Handler) GetAllAssets(c *gin.Context) {
	assets, err := h.svc.GetAllAssets()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assets": assets, "count": len(assets)})
}

// checkTypeFields enforces required-for-type fields at the request
// boundary. The engine itself accepts any combination, so this is the
// only place the per-type rules live.
func checkTypeFields(req models.AddAssetRequest) string {
	switch req.Type {
	case models.AssetCommodities, models.AssetCommodity:
		if req.CommodityType == nil {
			return "commodity_type is required for commodities"
		}
	case models.AssetRD:
		if req.MonthlyAmount == nil || req.NumberOfMonths == nil {
			return "monthly_amount and number_of_months are required for recurring deposits"
		}
	case models.AssetBonds:
		if req.BondType == nil {
			return "bond_type is required for bonds"
		}
	}
	return ""
}
