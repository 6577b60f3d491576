package analytics

import (
	"gitlab.com/aquantlab/gridbot/models"
)

// StrategyResult is the outcome of one (strategy, parameter tuple)
// evaluation. It is created once by the scheduler and never mutated.
type StrategyResult struct {
	StrategyName string
	Parameters   models.Params
	Metrics      Metrics
	Trades       []models.Trade
	Timing       TaskTiming
}
