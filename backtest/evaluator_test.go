package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquantlab/gridbot/models"
)

func TestEvaluateConstantCurve(t *testing.T) {
	metrics, err := Evaluate(models.EquityCurve{100, 100, 100, 100}, nil, 252)
	require.NoError(t, err)

	assert.Equal(t, 0.0, metrics.TotalReturn)
	assert.Equal(t, 0.0, metrics.AnnualizedReturn)
	assert.Equal(t, 0.0, metrics.Volatility)
	assert.Equal(t, 0.0, metrics.SharpeRatio)
	assert.Equal(t, 0.0, metrics.MaxDrawdown)
	assert.Equal(t, 0.0, metrics.WinRate)
	assert.Equal(t, 0.0, metrics.WinLossRatio)
	assert.Equal(t, 0, metrics.TradeCount)
}

func TestEvaluateRisingCurve(t *testing.T) {
	metrics, err := Evaluate(models.EquityCurve{100, 110, 115.5}, nil, 252)
	require.NoError(t, err)

	assert.InDelta(t, 0.155, metrics.TotalReturn, 1e-9)
	assert.Greater(t, metrics.AnnualizedReturn, 0.0)
	assert.Greater(t, metrics.Volatility, 0.0)
	assert.Greater(t, metrics.SharpeRatio, 0.0)
	assert.Equal(t, 0.0, metrics.MaxDrawdown)
}

func TestEvaluateMaxDrawdown(t *testing.T) {
	metrics, err := Evaluate(models.EquityCurve{100, 120, 90, 110}, nil, 252)
	require.NoError(t, err)

	assert.InDelta(t, -0.25, metrics.MaxDrawdown, 1e-9)
	assert.GreaterOrEqual(t, metrics.MaxDrawdown, -1.0)
	assert.LessOrEqual(t, metrics.MaxDrawdown, 0.0)
}

func TestEvaluateTradeStats(t *testing.T) {
	trades := []models.Trade{
		{Side: models.SideLong, EntryBar: 0, ExitBar: 2, EntryPrice: 10, ExitPrice: 12, Quantity: 1},
		{Side: models.SideLong, EntryBar: 3, ExitBar: 4, EntryPrice: 10, ExitPrice: 9, Quantity: 1},
	}
	metrics, err := Evaluate(models.EquityCurve{100, 102, 101, 103, 102}, trades, 252)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TradeCount)
	assert.InDelta(t, 50, metrics.WinRate, 1e-9)
	assert.InDelta(t, 1, metrics.WinLossRatio, 1e-9)
	assert.GreaterOrEqual(t, metrics.WinRate, 0.0)
	assert.LessOrEqual(t, metrics.WinRate, 100.0)
	assert.InDelta(t, 1.5, metrics.AvgHoldingBars, 1e-9)
}

func TestEvaluateRejectsShortCurve(t *testing.T) {
	var compErr *models.ComputationError
	_, err := Evaluate(models.EquityCurve{100}, nil, 252)
	require.ErrorAs(t, err, &compErr)

	_, err = Evaluate(models.EquityCurve{}, nil, 252)
	require.ErrorAs(t, err, &compErr)
}
