package portfolio

import (
	"fmt"

	"github.com/atharvakonge/investment-tracker/internal/models"
)

// PortfolioSummary folds the current store contents into the
// aggregate view. Exited stock value is reported but excluded from
// total capital: realized exits are money already taken off the
// table.
func (s *Service) PortfolioSummary() (models.PortfolioSummary, error) {
	active, err := s.GetActiveStocks()
	if err != nil {
		return models.PortfolioSummary{}, fmt.Errorf("summary: %w", err)
	}
	exited, err := s.GetExitedStocks()
	if err != nil {
		return models.PortfolioSummary{}, fmt.Errorf("summary: %w", err)
	}
	assets, err := s.GetAllAssets()
	if err != nil {
		return models.PortfolioSummary{}, fmt.Errorf("summary: %w", err)
	}

	var holding, exitedValue, assetsValue float64
	for _, st := range active {
		holding += st.Quantity * st.BuyPrice
	}
	for _, st := range exited {
		exitedValue += st.ExitedQuantity() * st.ExitedPrice()
	}
	for _, a := range assets {
		assetsValue += a.Value()
	}

	return models.PortfolioSummary{
		TotalPortfolioCapital: holding + assetsValue,
		StocksHoldingValue:    holding,
		StocksExitedValue:     exitedValue,
		AssetsValue:           assetsValue,
		ActiveStocksCount:     len(active),
		ExitedStocksCount:     len(exited),
		AssetsCount:           len(assets),
	}, nil
}

// AssetAllocation breaks total capital down by category: one slice
// for active stocks, then one per asset display type in first-seen
// order. Percentages are 0 when total capital is 0.
func (s *Service) AssetAllocation() ([]models.AllocationSlice, error) {
	summary, err := s.PortfolioSummary()
	if err != nil {
		return nil, err
	}
	assets, err := s.GetAllAssets()
	if err != nil {
		return nil, fmt.Errorf("allocation: %w", err)
	}

	total := summary.TotalPortfolioCapital
	slices := make([]models.AllocationSlice, 0)

	if summary.StocksHoldingValue > 0 {
		slices = append(slices, models.AllocationSlice{
			Type:       "Stocks",
			Value:      summary.StocksHoldingValue,
			Percentage: share(summary.StocksHoldingValue, total),
		})
	}

	groups := make(map[string]float64)
	var order []string
	for _, a := range assets {
		label := a.Type.Label()
		if _, ok := groups[label]; !ok {
			order = append(order, label)
		}
		groups[label] += a.Value()
	}
	for _, label := range order {
		slices = append(slices, models.AllocationSlice{
			Type:       label,
			Value:      groups[label],
			Percentage: share(groups[label], total),
		})
	}

	return slices, nil
}

// share guards the zero-capital case: never NaN or Inf.
func share(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
