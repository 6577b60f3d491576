package backtest

import (
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
	for i, c := range closes {
		bars[i] = models.MarketBar{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			Volume:    1000,
		}
	}
	dataset, err := models.NewMarketDataset(bars)
	require.NoError(t, err)
	return dataset
}

func TestSimulateRoundTripArithmetic(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11, 12, 12})
	signals := []models.Signal{
		models.SignalHold, models.SignalBuy, models.SignalHold,
		models.SignalSell, models.SignalHold,
	}

	curve, trades, err := Simulate(dataset, signals, 0, 1000, 0.01)
	require.NoError(t, err)

	// Buy at 10: 10 commission leaves 990 invested, 99 units. Sell at 12:
	// 1188 proceeds minus 11.88 commission.
	expected := []float64{1000, 990, 1089, 1176.12, 1176.12}
	require.Len(t, curve, len(expected))
	for i, want := range expected {
		assert.InDelta(t, want, curve[i], 1e-9, "bar %d", i)
	}

	require.Len(t, trades, 1)
	trade := trades[0]
	assert.Equal(t, 1, trade.EntryBar)
	assert.Equal(t, 3, trade.ExitBar)
	assert.InDelta(t, 10, trade.EntryPrice, 1e-9)
	assert.InDelta(t, 12, trade.ExitPrice, 1e-9)
	assert.InDelta(t, 99, trade.Quantity, 1e-9)
	assert.InDelta(t, 21.88, trade.CommissionPaid, 1e-9)
	assert.InDelta(t, 176.12/990, trade.Return(), 1e-9)
	assert.Equal(t, 2, trade.HoldingBars())
}

func TestSimulateCurveLength(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11, 12, 12})
	signals := make([]models.Signal, 5)

	curve, trades, err := Simulate(dataset, signals, 2, 1000, 0.001)
	require.NoError(t, err)
	assert.Len(t, curve, 3)
	assert.Empty(t, trades)
	for _, equity := range curve {
		assert.Equal(t, 1000.0, equity)
	}
}

func TestSimulateIgnoresBuyOnFinalBar(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11, 12, 12})
	signals := make([]models.Signal, 5)
	signals[4] = models.SignalBuy

	curve, trades, err := Simulate(dataset, signals, 0, 1000, 0.01)
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, 1000.0, curve[len(curve)-1])
}

func TestSimulateForcesEndOfSeriesExit(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11, 12, 12})
	signals := make([]models.Signal, 5)
	signals[1] = models.SignalBuy

	curve, trades, err := Simulate(dataset, signals, 0, 1000, 0.01)
	require.NoError(t, err)

	require.Len(t, trades, 1)
	assert.Equal(t, 1, trades[0].EntryBar)
	assert.Equal(t, 4, trades[0].ExitBar)
	assert.Less(t, trades[0].EntryBar, trades[0].ExitBar)

	// The final curve point is the liquidation value, not the mark.
	assert.InDelta(t, 1176.12, curve[len(curve)-1], 1e-9)
	assert.InDelta(t, 1188, curve[len(curve)-2], 1e-9)
}

func TestSimulateIgnoresSellWhileFlat(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11, 12, 12})
	signals := make([]models.Signal, 5)
	signals[1] = models.SignalSell
	signals[2] = models.SignalSell

	curve, trades, err := Simulate(dataset, signals, 0, 1000, 0.01)
	require.NoError(t, err)
	assert.Empty(t, trades)
	for _, equity := range curve {
		assert.Equal(t, 1000.0, equity)
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	dataset := datasetFromCloses(t, []float64{10, 10, 11})

	var dataErr *models.DataQualityError
	_, _, err := Simulate(dataset, make([]models.Signal, 2), 0, 1000, 0.01)
	require.ErrorAs(t, err, &dataErr)

	_, _, err = Simulate(dataset, make([]models.Signal, 3), 3, 1000, 0.01)
	require.ErrorAs(t, err, &dataErr)

	var compErr *models.ComputationError
	_, _, err = Simulate(dataset, make([]models.Signal, 3), 0, 0, 0.01)
	require.ErrorAs(t, err, &compErr)

	_, _, err = Simulate(dataset, make([]models.Signal, 3), 0, 1000, 1)
	require.ErrorAs(t, err, &compErr)
}
