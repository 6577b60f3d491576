package indicators

import (
	"math"

	"github.com/sdcoffey/techan"
	"gitlab.com/aquantlab/gridbot/models"
)

// ADX computes Wilder's directional movement system: +DI and -DI from
// smoothed directional movement over true range, DX from their spread, and
// ADX as the smoothed DX. +DI/-DI are defined from index period, ADX from
// index 2*period. All divisions are guarded; a zero denominator yields 0.
func ADX(dataset *models.MarketDataset, period int) (plusDI, minusDI, adx []float64) {
	n := dataset.Len()
	plusDI = nanColumn(n)
	minusDI = nanColumn(n)
	adx = nanColumn(n)
	if period < 1 || n <= 2*period {
		return plusDI, minusDI, adx
	}

	trueRange := materialize(techan.NewTrueRangeIndicator(dataset.Series()), n, 1)

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 1; i < n; i++ {
		upMove := dataset.Bar(i).High - dataset.Bar(i-1).High
		downMove := dataset.Bar(i-1).Low - dataset.Bar(i).Low
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	// Wilder seeding: plain sums over the first window, then
	// smooth(i) = smooth(i-1) - smooth(i-1)/period + value(i).
	smTR := 0.0
	smPlus := 0.0
	smMinus := 0.0
	for i := 1; i <= period; i++ {
		smTR += trueRange[i]
		smPlus += plusDM[i]
		smMinus += minusDM[i]
	}

	dx := nanColumn(n)
	for i := period; i < n; i++ {
		if i > period {
			smTR = smTR - smTR/float64(period) + trueRange[i]
			smPlus = smPlus - smPlus/float64(period) + plusDM[i]
			smMinus = smMinus - smMinus/float64(period) + minusDM[i]
		}
		if smTR == 0 {
			plusDI[i] = 0
			minusDI[i] = 0
		} else {
			plusDI[i] = 100 * smPlus / smTR
			minusDI[i] = 100 * smMinus / smTR
		}
		sum := plusDI[i] + minusDI[i]
		if sum == 0 {
			dx[i] = 0
		} else {
			dx[i] = 100 * math.Abs(plusDI[i]-minusDI[i]) / sum
		}
	}

	seed := 0.0
	for i := period; i < 2*period; i++ {
		seed += dx[i]
	}
	adx[2*period] = (seed + dx[2*period]) / float64(period+1)
	for i := 2*period + 1; i < n; i++ {
		adx[i] = (adx[i-1]*float64(period-1) + dx[i]) / float64(period)
	}
	return plusDI, minusDI, adx
}
