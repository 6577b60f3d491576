package indicators

import (
	"gitlab.com/aquantlab/gridbot/models"
)

// OBV is on-balance volume: a cumulative sum of volume signed by the
// close-to-close direction. An unchanged close leaves OBV flat. Defined from
// index 0 with OBV(0) = 0.
func OBV(dataset *models.MarketDataset) []float64 {
	n := dataset.Len()
	col := make([]float64, n)
	for i := 1; i < n; i++ {
		change := dataset.Bar(i).Close - dataset.Bar(i-1).Close
		switch {
		case change > 0:
			col[i] = col[i-1] + dataset.Bar(i).Volume
		case change < 0:
			col[i] = col[i-1] - dataset.Bar(i).Volume
		default:
			col[i] = col[i-1]
		}
	}
	return col
}

// OBVMovingAverages smooths OBV with two window lengths for crossover
// signals. Defined from index short-1 and long-1 respectively.
func OBVMovingAverages(dataset *models.MarketDataset, short, long int) (fast, slow []float64) {
	obv := OBV(dataset)
	return rollingMean(obv, short), rollingMean(obv, long)
}
