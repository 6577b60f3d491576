package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

type stochasticKIndicator struct {
	closePrice techan.Indicator
	minLow     techan.Indicator
	maxHigh    techan.Indicator
}

// NewStochasticKIndicator is raw %K: the position of the close inside the
// rolling high/low stretch, on a 0-100 scale. A zero stretch returns 50.
func NewStochasticKIndicator(series *techan.TimeSeries, window int) techan.Indicator {
	return stochasticKIndicator{
		closePrice: techan.NewClosePriceIndicator(series),
		minLow:     techan.NewMinimumValueIndicator(techan.NewLowPriceIndicator(series), window),
		maxHigh:    techan.NewMaximumValueIndicator(techan.NewHighPriceIndicator(series), window),
	}
}

func (s stochasticKIndicator) Calculate(index int) big.Decimal {
	min := s.minLow.Calculate(index).Float()
	max := s.maxHigh.Calculate(index).Float()
	stretch := max - min
	if stretch == 0 {
		return big.NewDecimal(50)
	}
	k := 100 * (s.closePrice.Calculate(index).Float() - min) / stretch
	return big.NewDecimal(k)
}

// KDJ computes %K, the %D smoothing and %J = 3%K - 2%D. %K is defined from
// index kPeriod-1, %D and %J from index kPeriod+dPeriod-2.
func KDJ(dataset *models.MarketDataset, kPeriod, dPeriod int) (k, d, j []float64) {
	n := dataset.Len()
	kInd := NewStochasticKIndicator(dataset.Series(), kPeriod)
	dInd := techan.NewSimpleMovingAverage(kInd, dPeriod)

	k = materialize(kInd, n, kPeriod-1)
	d = materialize(dInd, n, kPeriod+dPeriod-2)

	j = nanColumn(n)
	for i := kPeriod + dPeriod - 2; i < n; i++ {
		j[i] = 3*k[i] - 2*d[i]
	}
	return k, d, j
}
