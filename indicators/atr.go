package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// ATR is the rolling mean of the true range, where the true range is the
// widest of high-low, |high-prevClose| and |low-prevClose|. Defined from
// index period.
func ATR(dataset *models.MarketDataset, period int) []float64 {
	n := dataset.Len()
	if period < 1 || n <= period {
		return nanColumn(n)
	}
	trueRange := materialize(techan.NewTrueRangeIndicator(dataset.Series()), n, 1)
	return rollingMean(trueRange, period)
}
