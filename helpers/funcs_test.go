package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAndMean(t *testing.T) {
	assert.Equal(t, 10.0, Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Mean(values)
	assert.InDelta(t, 2.138, StdDev(values, mean), 0.001)
	assert.Equal(t, 0.0, StdDev([]float64{1}, 1))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, -1, 7, 2})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
}

func TestPositiveNegativeRatio(t *testing.T) {
	assert.Equal(t, 2.0, PositiveNegativeRatio([]float64{0.1, 0.2, -0.1}))
	assert.Equal(t, 0.5, PositiveNegativeRatio([]float64{0.1, -0.2, -0.1}))
	assert.Equal(t, 0.0, PositiveNegativeRatio([]float64{0.1, 0.2}))
	assert.Equal(t, 0.0, PositiveNegativeRatio(nil))
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite([]float64{1, 2, 3}))
	assert.False(t, AllFinite([]float64{1, math.NaN()}))
	assert.False(t, AllFinite([]float64{math.Inf(1)}))
}
