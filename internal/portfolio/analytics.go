package portfolio

import (
	"fmt"
	"math"
	"time"

	"github.com/atharvakonge/investment-tracker/internal/models"
)

// PNLAnalytics folds every exited stock row into realized-gain
// statistics. With no exited rows it returns the canonical all-zero
// structure with nil best/worst trades.
func (s *Service) PNLAnalytics() (models.PNLAnalytics, error) {
	exited, err := s.GetExitedStocks()
	if err != nil {
		return models.PNLAnalytics{}, fmt.Errorf("pnl analytics: %w", err)
	}
	if len(exited) == 0 {
		return models.PNLAnalytics{}, nil
	}

	var (
		totalInvested    float64
		totalRealized    float64
		totalHoldingDays int
		winning, losing  int
		best, worst      *models.TradeSnapshot
	)
	bestPct := math.Inf(-1)
	worstPct := math.Inf(1)

	for _, st := range exited {
		quantity := st.ExitedQuantity()
		invested := quantity * st.BuyPrice
		realized := quantity * st.ExitedPrice()
		profitLoss := realized - invested
		pct := 0.0
		if invested > 0 {
			pct = profitLoss / invested * 100
		}

		totalInvested += invested
		totalRealized += realized

		days := holdingDays(st.BuyDate, st.ExitDate)
		totalHoldingDays += days

		if profitLoss > 0 {
			winning++
		} else if profitLoss < 0 {
			losing++
		}

		// Strict comparisons: the first trade seen keeps a tie.
		if pct > bestPct {
			bestPct = pct
			best = &models.TradeSnapshot{
				Name:                 st.Name,
				ProfitLoss:           profitLoss,
				ProfitLossPercentage: pct,
				HoldingDays:          days,
			}
		}
		if pct < worstPct {
			worstPct = pct
			worst = &models.TradeSnapshot{
				Name:                 st.Name,
				ProfitLoss:           profitLoss,
				ProfitLossPercentage: pct,
				HoldingDays:          days,
			}
		}
	}

	netProfitLoss := totalRealized - totalInvested
	netPct := 0.0
	if totalInvested > 0 {
		netPct = netProfitLoss / totalInvested * 100
	}

	return models.PNLAnalytics{
		TotalInvested:           totalInvested,
		TotalRealized:           totalRealized,
		NetProfitLoss:           netProfitLoss,
		NetProfitLossPercentage: netPct,
		AverageHoldingDays:      totalHoldingDays / len(exited),
		BestTrade:               best,
		WorstTrade:              worst,
		WinningTrades:           winning,
		LosingTrades:            losing,
		TotalTrades:             len(exited),
	}, nil
}

// holdingDays is the whole-day span between buy and exit. A missing
// exit date should not happen on a well-formed exited row, but when
// it does the current moment stands in. Unparseable dates count as 0
// rather than failing the whole fold.
func holdingDays(buyDate string, exitDate *string) int {
	buy, err := time.Parse(dateLayout, buyDate)
	if err != nil {
		return 0
	}
	exit := time.Now()
	if exitDate != nil {
		parsed, err := time.Parse(dateLayout, *exitDate)
		if err != nil {
			return 0
		}
		exit = parsed
	}
	return int(math.Floor(exit.Sub(buy).Hours() / 24))
}
