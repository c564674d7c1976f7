package models

// PortfolioSummary is the aggregate view over both collections.
// Recomputed on every query - never cached.
type PortfolioSummary struct {
	TotalPortfolioCapital float64 `json:"total_portfolio_capital"`
	StocksHoldingValue    float64 `json:"stocks_holding_value"`
	StocksExitedValue     float64 `json:"stocks_exited_value"`
	AssetsValue           float64 `json:"assets_value"`
	ActiveStocksCount     int     `json:"active_stocks_count"`
	ExitedStocksCount     int     `json:"exited_stocks_count"`
	AssetsCount           int     `json:"assets_count"`
}

// AllocationSlice is one category of the portfolio breakdown.
type AllocationSlice struct {
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// TradeSnapshot captures a single realized trade for best/worst display.
type TradeSnapshot struct {
	Name                 string  `json:"name"`
	ProfitLoss           float64 `json:"profit_loss"`
	ProfitLossPercentage float64 `json:"profit_loss_percentage"`
	HoldingDays          int     `json:"holding_days"`
}

// PNLAnalytics aggregates all exited stock rows into realized-gain stats.
type PNLAnalytics struct {
	TotalInvested           float64        `json:"total_invested"`
	TotalRealized           float64        `json:"total_realized"`
	NetProfitLoss           float64        `json:"net_profit_loss"`
	NetProfitLossPercentage float64        `json:"net_profit_loss_percentage"`
	AverageHoldingDays      int            `json:"average_holding_days"`
	BestTrade               *TradeSnapshot `json:"best_trade"`
	WorstTrade              *TradeSnapshot `json:"worst_trade"`
	WinningTrades           int            `json:"winning_trades"`
	LosingTrades            int            `json:"losing_trades"`
	TotalTrades             int            `json:"total_trades"`
}
