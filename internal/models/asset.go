package models

// AssetType is the kind of a non-stock investment.
type AssetType string

const (
	AssetSchemes          AssetType = "schemes"
	AssetCryptocurrency   AssetType = "cryptocurrency"
	AssetStocksInvestment AssetType = "stocks_investment"
	AssetMutualFunds      AssetType = "mutual_funds"
	AssetCommodities      AssetType = "commodities"
	AssetCommodity        AssetType = "commodity" // singular form kept for legacy rows
	AssetFD               AssetType = "fd"
	AssetRD               AssetType = "rd"
	AssetBonds            AssetType = "bonds"
)

// ValidAssetType reports whether t is one of the known asset kinds.
func ValidAssetType(t AssetType) bool {
	switch t {
	case AssetSchemes, AssetCryptocurrency, AssetStocksInvestment, AssetMutualFunds,
		AssetCommodities, AssetCommodity, AssetFD, AssetRD, AssetBonds:
		return true
	}
	return false
}

// Label returns the display name for an asset kind.
func (t AssetType) Label() string {
	switch t {
	case AssetSchemes:
		return "Schemes"
	case AssetCryptocurrency:
		return "Cryptocurrency"
	case AssetStocksInvestment:
		return "Stock Investment"
	case AssetMutualFunds:
		return "Mutual Funds"
	case AssetCommodities, AssetCommodity:
		return "Commodities"
	case AssetFD:
		return "Fixed Deposit"
	case AssetRD:
		return "Recurring Deposit"
	case AssetBonds:
		return "Bonds"
	}
	return string(t)
}

// Asset is one row in the assets collection. Fields that do not apply
// to the asset's type are simply left nil.
type Asset struct {
	ID             string    `json:"id"`
	Type           AssetType `json:"type"`
	Name           string    `json:"name"`
	InvestedAmount float64   `json:"invested_amount"`
	CurrentGain    *float64  `json:"current_gain,omitempty"`

	// commodities / commodity
	CommodityType *string `json:"commodity_type,omitempty"` // gold | silver

	// rd
	MonthlyAmount  *float64 `json:"monthly_amount,omitempty"`
	NumberOfMonths *int     `json:"number_of_months,omitempty"`

	// bonds
	BondType     *string  `json:"bond_type,omitempty"` // government | corporate
	ReturnRate   *float64 `json:"return_rate,omitempty"`
	MaturityDate *string  `json:"maturity_date,omitempty"`
}

// Value is the asset's contribution to portfolio capital.
func (a Asset) Value() float64 {
	if a.CurrentGain != nil {
		return a.InvestedAmount + *a.CurrentGain
	}
	return a.InvestedAmount
}

// AssetPatch updates only the fields that are non-nil.
type AssetPatch struct {
	Type           *AssetType `json:"type,omitempty"`
	Name           *string    `json:"name,omitempty"`
	InvestedAmount *float64   `json:"invested_amount,omitempty"`
	CurrentGain    *float64   `json:"current_gain,omitempty"`
	CommodityType  *string    `json:"commodity_type,omitempty"`
	MonthlyAmount  *float64   `json:"monthly_amount,omitempty"`
	NumberOfMonths *int       `json:"number_of_months,omitempty"`
	BondType       *string    `json:"bond_type,omitempty"`
	ReturnRate     *float64   `json:"return_rate,omitempty"`
	MaturityDate   *string    `json:"maturity_date,omitempty"`
}

// Apply copies the supplied fields onto the record.
func (p AssetPatch) Apply(a *Asset) {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.InvestedAmount != nil {
		a.InvestedAmount = *p.InvestedAmount
	}
	if p.CurrentGain != nil {
		a.CurrentGain = p.CurrentGain
	}
	if p.CommodityType != nil {
		a.CommodityType = p.CommodityType
	}
	if p.MonthlyAmount != nil {
		a.MonthlyAmount = p.MonthlyAmount
	}
	if p.NumberOfMonths != nil {
		a.NumberOfMonths = p.NumberOfMonths
	}
	if p.BondType != nil {
		a.BondType = p.BondType
	}
	if p.ReturnRate != nil {
		a.ReturnRate = p.ReturnRate
	}
	if p.MaturityDate != nil {
		a.MaturityDate = p.MaturityDate
	}
}

// AddAssetRequest - what the client sends to record an asset
type AddAssetRequest struct {
	Type           AssetType `json:"type" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	InvestedAmount float64   `json:"invested_amount" binding:"required,gt=0"`
	CurrentGain    *float64  `json:"current_gain"`
	CommodityType  *string   `json:"commodity_type"`
	MonthlyAmount  *float64  `json:"monthly_amount"`
	NumberOfMonths *int      `json:"number_of_months"`
	BondType       *string   `json:"bond_type"`
	ReturnRate     *float64  `json:"return_rate"`
	MaturityDate   *string   `json:"maturity_date"`
}
