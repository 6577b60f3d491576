package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// MACD computes the EMA(fast)-EMA(slow) difference and its EMA(signal)
// signal line. The MACD line is defined from index slow-1, the signal line
// from index slow+signal-2.
func MACD(dataset *models.MarketDataset, fast, slow, signal int) (line []float64, signalLine []float64) {
	macd := techan.NewMACDIndicator(techan.NewClosePriceIndicator(dataset.Series()), fast, slow)
	sig := techan.NewEMAIndicator(macd, signal)

	line = materialize(macd, dataset.Len(), slow-1)
	signalLine = materialize(sig, dataset.Len(), slow+signal-2)
	return line, signalLine
}
