package portfolio

import (
	"github.com/atharvakonge/investment-tracker/internal/models"
)

// AddAsset records a new asset and returns its id. Type-specific
// optional fields are stored as supplied; the engine does not reject
// combinations that make no sense for the type (those are filtered at
// the request boundary).
func (s *Service) AddAsset(req models.AddAssetRequest) (string, error) {
	if !models.ValidAssetType(req.Type) {
		return "", validationErr("type", "unknown asset type")
	}
	if req.Name == "" {
		return "", validationErr("name", "must not be empty")
	}
	if err := checkPositive("invested_amount", req.InvestedAmount); err != nil {
		return "", err
	}

	return s.store.InsertAsset(models.Asset{
		Type:           req.Type,
		Name:           req.Name,
		InvestedAmount: req.InvestedAmount,
		CurrentGain:    req.CurrentGain,
		CommodityType:  req.CommodityType,
		MonthlyAmount:  req.MonthlyAmount,
		NumberOfMonths: req.NumberOfMonths,
		BondType:       req.BondType,
		ReturnRate:     req.ReturnRate,
		MaturityDate:   req.MaturityDate,
	})
}

// UpdateAsset patches only the supplied fields.
func (s *Service) UpdateAsset(id string, patch models.AssetPatch) error {
	if patch.Type != nil && !models.ValidAssetType(*patch.Type) {
		return validationErr("type", "unknown asset type")
	}
	if patch.Name != nil && *patch.Name == "" {
		return validationErr("name", "must not be empty")
	}
	if patch.InvestedAmount != nil {
		if err := checkPositive("invested_amount", *patch.InvestedAmount); err != nil {
			return err
		}
	}
	return s.store.PatchAsset(id, patch)
}

// DeleteAsset removes an asset unconditionally.
func (s *Service) DeleteAsset(id string) error {
	return s.store.DeleteAsset(id)
}

// GetAllAssets returns every asset row.
func (s *Service) GetAllAssets() ([]models.Asset, error) {
	return s.store.ScanAssets(nil)
}
