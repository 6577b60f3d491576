package indicators

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// IchimokuCloud holds the five ichimoku columns aligned to bar indices.
// SenkouA/SenkouB are forward-shifted by the kijun period, so the first
// defined cloud value appears that much later; Chikou is the close shifted
// backward and is undefined for the last kijun bars of the series.
type IchimokuCloud struct {
	Tenkan  []float64
	Kijun   []float64
	SenkouA []float64
	SenkouB []float64
	Chikou  []float64
}

func midpoint(series *techan.TimeSeries, n, window int) []float64 {
	maxHigh := techan.NewMaximumValueIndicator(techan.NewHighPriceIndicator(series), window)
	minLow := techan.NewMinimumValueIndicator(techan.NewLowPriceIndicator(series), window)
	col := nanColumn(n)
	for i := window - 1; i < n; i++ {
		col[i] = (maxHigh.Calculate(i).Float() + minLow.Calculate(i).Float()) / 2
	}
	return col
}

// Ichimoku computes the cloud with the classic tenkan/kijun/senkouB window
// triple. tenkan < kijun < senkouB is required by the strategy grid.
func Ichimoku(dataset *models.MarketDataset, tenkan, kijun, senkouB int) IchimokuCloud {
	n := dataset.Len()
	shift := kijun

	cloud := IchimokuCloud{
		Tenkan:  midpoint(dataset.Series(), n, tenkan),
		Kijun:   midpoint(dataset.Series(), n, kijun),
		SenkouA: nanColumn(n),
		SenkouB: nanColumn(n),
		Chikou:  nanColumn(n),
	}

	senkouBMid := midpoint(dataset.Series(), n, senkouB)
	for i := 0; i+shift < n; i++ {
		if Defined(cloud.Tenkan, i) && Defined(cloud.Kijun, i) {
			cloud.SenkouA[i+shift] = (cloud.Tenkan[i] + cloud.Kijun[i]) / 2
		}
		if Defined(senkouBMid, i) {
			cloud.SenkouB[i+shift] = senkouBMid[i]
		}
	}

	for i := 0; i+shift < n; i++ {
		cloud.Chikou[i] = dataset.Bar(i + shift).Close
	}
	return cloud
}
