// Package indicators computes the engine's indicator families over a market
// dataset. Columns are float64 slices aligned to bar indices; values before
// an indicator's warm-up window are NaN, never zero-filled.
package indicators

import (
	"math"

	"github.com/sdcoffey/techan"
)

func nanColumn(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = math.NaN()
	}
	return col
}

// materialize evaluates a techan indicator into a column, leaving NaN before
// the first defined index.
func materialize(ind techan.Indicator, n int, firstDefined int) []float64 {
	col := nanColumn(n)
	for i := firstDefined; i < n; i++ {
		col[i] = ind.Calculate(i).Float()
	}
	return col
}

// rollingMean averages a window over an already-built column, respecting NaN
// warm-up in the source.
func rollingMean(values []float64, period int) []float64 {
	col := nanColumn(len(values))
	if period < 1 {
		return col
	}
	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		ok := true
		for j := i - period + 1; j <= i; j++ {
			if math.IsNaN(values[j]) {
				ok = false
				break
			}
			sum += values[j]
		}
		if ok {
			col[i] = sum / float64(period)
		}
	}
	return col
}

// Defined reports whether a column holds a computed value at the index.
func Defined(col []float64, index int) bool {
	return index >= 0 && index < len(col) && !math.IsNaN(col[index])
}
