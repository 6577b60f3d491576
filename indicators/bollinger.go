package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// Bollinger computes the middle band (SMA) and the upper/lower bands at
// k standard deviations. All three are defined from index period-1.
func Bollinger(dataset *models.MarketDataset, period int, k float64) (middle, upper, lower []float64) {
	closePrice := techan.NewClosePriceIndicator(dataset.Series())
	n := dataset.Len()

	middle = materialize(techan.NewSimpleMovingAverage(closePrice, period), n, period-1)
	upper = materialize(techan.NewBollingerUpperBandIndicator(closePrice, period, k), n, period-1)
	lower = materialize(techan.NewBollingerLowerBandIndicator(closePrice, period, k), n, period-1)
	return middle, upper, lower
}
