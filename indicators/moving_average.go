package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// SMA is the simple moving average of closes. Defined from index period-1.
func SMA(dataset *models.MarketDataset, period int) []float64 {
	ind := techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(dataset.Series()), period)
	return materialize(ind, dataset.Len(), period-1)
}

// EMA is the exponential moving average of closes. Defined from index
// period-1, matching techan's seeding.
func EMA(dataset *models.MarketDataset, period int) []float64 {
	ind := techan.NewEMAIndicator(techan.NewClosePriceIndicator(dataset.Series()), period)
	return materialize(ind, dataset.Len(), period-1)
}
