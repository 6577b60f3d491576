package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquantlab/gridbot/models"
)

func datasetFromCloses(t *testing.T, closes []float64) *models.MarketDataset {
	t.Helper()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.MarketBar, len(closes))
	for i, close := range closes {
		bars[i] = models.MarketBar{
			Timestamp: start.Add(time.Duration(i) * 24 * time.Hour),
			Open:      close,
			High:      close + 0.5,
			Low:       close - 0.5,
			Close:     close,
			Volume:    1000,
		}
	}
	dataset, err := models.NewMarketDataset(bars)
	require.NoError(t, err)
	return dataset
}

func flatDataset(t *testing.T, n int, price float64) *models.MarketDataset {
	t.Helper()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.MarketBar, n)
	for i := range bars {
		bars[i] = models.MarketBar{
			Timestamp: start.Add(time.Duration(i) * 24 * time.Hour),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    1000,
		}
	}
	dataset, err := models.NewMarketDataset(bars)
	require.NoError(t, err)
	return dataset
}

func TestSMAWarmupAndValues(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{1, 2, 3, 4, 5, 6})
	sma := SMA(dataset, 3)

	assert.True(t, math.IsNaN(sma[0]))
	assert.True(t, math.IsNaN(sma[1]))
	assert.InDelta(t, 2, sma[2], 1e-9)
	assert.InDelta(t, 5, sma[5], 1e-9)
}

func TestRSIAllGainsReturnsHundred(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 11, 12, 13, 14, 15, 16, 17})
	rsi := RSI(dataset, 5)

	for i := 0; i < 5; i++ {
		assert.True(t, math.IsNaN(rsi[i]), "index %d should be warm-up", i)
	}
	for i := 5; i < dataset.Len(); i++ {
		assert.Equal(t, 100.0, rsi[i])
	}
}

func TestRSIBounded(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 12, 9, 14, 8, 15, 7, 16, 6, 17, 5})
	rsi := RSI(dataset, 4)
	for i := 4; i < dataset.Len(); i++ {
		assert.GreaterOrEqual(t, rsi[i], 0.0)
		assert.LessOrEqual(t, rsi[i], 100.0)
	}
}

func TestMACDWarmupBoundaries(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 50 + float64(i%7)
	}
	dataset := datasetFromCloses(t, closes)
	line, signal := MACD(dataset, 5, 10, 4)

	assert.True(t, math.IsNaN(line[8]))
	assert.False(t, math.IsNaN(line[9]))
	assert.True(t, math.IsNaN(signal[11]))
	assert.False(t, math.IsNaN(signal[12]))
}

func TestBollingerFlatSeriesCollapses(t *testing.T) {
	dataset := flatDataset(t, 25, 100)
	middle, upper, lower := Bollinger(dataset, 10, 2)

	assert.True(t, math.IsNaN(upper[8]))
	for i := 9; i < dataset.Len(); i++ {
		assert.InDelta(t, 100, middle[i], 1e-9)
		assert.InDelta(t, 100, upper[i], 1e-9)
		assert.InDelta(t, 100, lower[i], 1e-9)
	}
}

func TestKDJFlatStretchGuard(t *testing.T) {
	dataset := flatDataset(t, 20, 50)
	k, d, j := KDJ(dataset, 9, 3)

	assert.True(t, math.IsNaN(k[7]))
	assert.InDelta(t, 50, k[8], 1e-9)
	assert.InDelta(t, 50, d[10], 1e-9)
	assert.InDelta(t, 50, j[10], 1e-9)
}

func TestCCIFlatWindowGuard(t *testing.T) {
	dataset := flatDataset(t, 15, 80)
	cci := CCI(dataset, 5)

	assert.True(t, math.IsNaN(cci[3]))
	for i := 4; i < dataset.Len(); i++ {
		assert.Equal(t, 0.0, cci[i])
	}
}

func TestADXBoundariesAndRange(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i) + 3*math.Sin(float64(i)/3)
	}
	dataset := datasetFromCloses(t, closes)
	plusDI, minusDI, adx := ADX(dataset, 7)

	assert.True(t, math.IsNaN(plusDI[6]))
	assert.False(t, math.IsNaN(plusDI[7]))
	assert.True(t, math.IsNaN(adx[13]))
	assert.False(t, math.IsNaN(adx[14]))

	for i := 14; i < dataset.Len(); i++ {
		assert.GreaterOrEqual(t, adx[i], 0.0)
		assert.LessOrEqual(t, adx[i], 100.0)
		assert.GreaterOrEqual(t, plusDI[i], 0.0)
		assert.GreaterOrEqual(t, minusDI[i], 0.0)
	}
}

func TestATRConstantRange(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 10, 10, 10, 10, 10, 10})
	atr := ATR(dataset, 3)

	assert.True(t, math.IsNaN(atr[2]))
	for i := 3; i < dataset.Len(); i++ {
		assert.InDelta(t, 1, atr[i], 1e-9)
	}
}

func TestOBVCumulativeAndFlat(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 11, 11, 10, 12})
	obv := OBV(dataset)

	assert.Equal(t, []float64{0, 1000, 1000, 0, 1000}, obv)
}

func TestIchimokuShifts(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100 + float64(i%13)
	}
	dataset := datasetFromCloses(t, closes)
	cloud := Ichimoku(dataset, 9, 26, 52)

	assert.True(t, math.IsNaN(cloud.Tenkan[7]))
	assert.False(t, math.IsNaN(cloud.Tenkan[8]))

	// senkouB midpoint needs 52 bars and is shifted forward by 26.
	assert.True(t, math.IsNaN(cloud.SenkouB[76]))
	assert.False(t, math.IsNaN(cloud.SenkouB[77]))

	// chikou is the close shifted back, so the last 26 bars are undefined.
	assert.False(t, math.IsNaN(cloud.Chikou[53]))
	assert.True(t, math.IsNaN(cloud.Chikou[54]))
	assert.Equal(t, dataset.Bar(26).Close, cloud.Chikou[0])
}

func TestParabolicSARReversalResetsState(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 5}
	dataset := datasetFromCloses(t, closes)
	sar, uptrend := ParabolicSAR(dataset, 0.02, 0.2)

	assert.True(t, math.IsNaN(sar[0]))
	assert.InDelta(t, 9.5, sar[1], 1e-9)
	assert.True(t, uptrend[1])

	for i := 2; i < 10; i++ {
		assert.True(t, uptrend[i], "index %d should still be an uptrend", i)
		assert.Less(t, sar[i], dataset.Bar(i).Low)
	}

	// The collapse to 5 pierces the stop: trend flips and the new stop
	// seeds from the old extreme point.
	assert.False(t, uptrend[10])
	assert.InDelta(t, 19.5, sar[10], 1e-9)
}

func TestParabolicSARDeterministic(t *testing.T) {
	closes := []float64{10, 11, 9, 12, 8, 13, 7, 14, 6, 15}
	dataset := datasetFromCloses(t, closes)

	sarA, trendA := ParabolicSAR(dataset, 0.02, 0.2)
	sarB, trendB := ParabolicSAR(dataset, 0.02, 0.2)

	for i := range sarA {
		if math.IsNaN(sarA[i]) {
			assert.True(t, math.IsNaN(sarB[i]))
			continue
		}
		assert.Equal(t, sarA[i], sarB[i])
	}
	assert.Equal(t, trendA, trendB)
}

func TestComputeSetColumns(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i%11)
	}
	dataset := datasetFromCloses(t, closes)

	set, err := Compute(dataset, Spec{
		SMA:  []int{5, 20},
		RSI:  []int{14},
		MACD: []MACDSpec{{Fast: 12, Slow: 26, Signal: 9}},
		OBV:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, dataset.Len(), set.Len())
	assert.Contains(t, set.Names(), "sma_5")
	assert.Contains(t, set.Names(), "macd_12_26")
	assert.Contains(t, set.Names(), "macd_signal_12_26_9")

	col, ok := set.Column("rsi_14")
	require.True(t, ok)
	assert.True(t, math.IsNaN(col[0]))
	assert.True(t, math.IsNaN(set.Value("missing", 0)))
}

func TestComputeRejectsBadPeriods(t *testing.T) {
	dataset := flatDataset(t, 10, 100)

	_, err := Compute(dataset, Spec{SMA: []int{0}})
	var paramErr *models.ParameterValidationError
	require.ErrorAs(t, err, &paramErr)

	_, err = Compute(dataset, Spec{MACD: []MACDSpec{{Fast: 26, Slow: 12, Signal: 9}}})
	require.ErrorAs(t, err, &paramErr)
}
