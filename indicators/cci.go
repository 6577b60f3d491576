package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// CCIConstant is Lambert's scaling constant.
const CCIConstant = 0.015

// CCI is the commodity channel index over typical prices. Defined from index
// period-1. A zero mean absolute deviation (flat window) yields 0.
func CCI(dataset *models.MarketDataset, period int) []float64 {
	n := dataset.Len()
	col := nanColumn(n)
	if period < 1 || n < period {
		return col
	}

	typical := materialize(techan.NewTypicalPriceIndicator(dataset.Series()), n, 0)
	sma := materialize(techan.NewSimpleMovingAverage(techan.NewTypicalPriceIndicator(dataset.Series()), period), n, period-1)

	for i := period - 1; i < n; i++ {
		meanDev := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := typical[j] - sma[i]
			if diff < 0 {
				diff = -diff
			}
			meanDev += diff
		}
		meanDev /= float64(period)
		if meanDev == 0 {
			col[i] = 0
			continue
		}
		col[i] = (typical[i] - sma[i]) / (CCIConstant * meanDev)
	}
	return col
}
