package indicators

import (
	"gitlab.com/aquantlab/gridbot/models"
)

// RSI is Wilder's relative strength index: average gain and loss smoothed
// exponentially with alpha 1/period. Defined from index period. A zero
// average loss returns 100 instead of dividing by zero.
func RSI(dataset *models.MarketDataset, period int) []float64 {
	n := dataset.Len()
	col := nanColumn(n)
	if period < 1 || n <= period {
		return col
	}

	closes := dataset.Closes()
	avgGain := 0.0
	avgLoss := 0.0
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	col[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		gain := 0.0
		loss := 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		col[i] = rsiValue(avgGain, avgLoss)
	}
	return col
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
