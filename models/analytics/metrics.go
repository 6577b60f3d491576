package analytics

import "fmt"

// Metrics is the performance record reduced from one equity curve and its
// trades. WinRate is a percentage in [0,100]; MaxDrawdown is a fraction in
// [-1,0]; the rest are fractions or annualized ratios.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	Volatility       float64
	SharpeRatio      float64
	MaxDrawdown      float64
	WinRate          float64
	// WinLossRatio is winning trades per losing trade, 0 when no trade
	// lost.
	WinLossRatio   float64
	TradeCount     int
	AvgHoldingBars float64
}

// MetricNames lists the metrics a run can be ranked by, in declaration order.
var MetricNames = []string{
	"sharpe_ratio",
	"total_return",
	"annualized_return",
	"volatility",
	"max_drawdown",
	"win_rate",
	"win_loss_ratio",
	"trade_count",
}

// Value extracts a metric by its ranking name.
func (m Metrics) Value(name string) (float64, error) {
	switch name {
	case "sharpe_ratio":
		return m.SharpeRatio, nil
	case "total_return":
		return m.TotalReturn, nil
	case "annualized_return":
		return m.AnnualizedReturn, nil
	case "volatility":
		return m.Volatility, nil
	case "max_drawdown":
		return m.MaxDrawdown, nil
	case "win_rate":
		return m.WinRate, nil
	case "win_loss_ratio":
		return m.WinLossRatio, nil
	case "trade_count":
		return float64(m.TradeCount), nil
	default:
		return 0, fmt.Errorf("%s is not a known metric", name)
	}
}
