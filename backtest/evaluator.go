package backtest

import (
	"math"

	"gitlab.com/aquantlab/gridbot/helpers"
	"gitlab.com/aquantlab/gridbot/models"
	"gitlab.com/aquantlab/gridbot/models/analytics"
)

// Evaluate reduces a complete equity curve and its trades to a metrics
// record. Every ratio is guarded: zero volatility yields a Sharpe of 0, an
// empty trade list a win rate of 0, never NaN. The annualization factor is
// the number of bars per year.
func Evaluate(curve models.EquityCurve, trades []models.Trade, annualization float64) (analytics.Metrics, error) {
	if len(curve) < 2 {
		return analytics.Metrics{}, &models.ComputationError{Stage: "evaluate", Reason: "equity curve too short"}
	}
	if annualization <= 0 {
		annualization = 252
	}

	initial := curve[0]
	final := curve[len(curve)-1]

	metrics := analytics.Metrics{TradeCount: len(trades)}
	if initial > 0 {
		metrics.TotalReturn = final/initial - 1
		metrics.AnnualizedReturn = math.Pow(final/initial, annualization/float64(len(curve))) - 1
	}

	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		if curve[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, curve[i]/curve[i-1]-1)
	}
	metrics.Volatility = helpers.StdDev(returns, helpers.Mean(returns)) * math.Sqrt(annualization)

	if metrics.Volatility != 0 {
		metrics.SharpeRatio = metrics.AnnualizedReturn / metrics.Volatility
	}

	runningMax := curve[0]
	maxDrawdown := 0.0
	for _, equity := range curve {
		if equity > runningMax {
			runningMax = equity
		}
		if runningMax > 0 {
			drawdown := (equity - runningMax) / runningMax
			if drawdown < maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	metrics.MaxDrawdown = maxDrawdown

	if len(trades) > 0 {
		wins := 0
		holding := 0.0
		tradeReturns := make([]float64, 0, len(trades))
		for _, trade := range trades {
			if trade.Return() > 0 {
				wins++
			}
			holding += float64(trade.HoldingBars())
			tradeReturns = append(tradeReturns, trade.Return())
		}
		metrics.WinRate = 100 * float64(wins) / float64(len(trades))
		metrics.WinLossRatio = helpers.PositiveNegativeRatio(tradeReturns)
		metrics.AvgHoldingBars = holding / float64(len(trades))
	}

	if !helpers.AllFinite([]float64{
		metrics.TotalReturn,
		metrics.AnnualizedReturn,
		metrics.Volatility,
		metrics.SharpeRatio,
		metrics.MaxDrawdown,
		metrics.WinRate,
		metrics.WinLossRatio,
	}) {
		return analytics.Metrics{}, &models.ComputationError{Stage: "evaluate", Reason: "non-finite metric"}
	}

	return metrics, nil
}
