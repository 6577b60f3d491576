package strategies

import (
	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// Crossing detection needs two consecutive defined values on both columns;
// anything inside a warm-up window is treated as no crossing.

func crossedUp(a, b []float64, i int) bool {
	if !indicators.Defined(a, i-1) || !indicators.Defined(b, i-1) ||
		!indicators.Defined(a, i) || !indicators.Defined(b, i) {
		return false
	}
	return a[i-1] <= b[i-1] && a[i] > b[i]
}

func crossedDown(a, b []float64, i int) bool {
	if !indicators.Defined(a, i-1) || !indicators.Defined(b, i-1) ||
		!indicators.Defined(a, i) || !indicators.Defined(b, i) {
		return false
	}
	return a[i-1] >= b[i-1] && a[i] < b[i]
}

func crossedUpLevel(col []float64, level float64, i int) bool {
	if !indicators.Defined(col, i-1) || !indicators.Defined(col, i) {
		return false
	}
	return col[i-1] <= level && col[i] > level
}

func crossedDownLevel(col []float64, level float64, i int) bool {
	if !indicators.Defined(col, i-1) || !indicators.Defined(col, i) {
		return false
	}
	return col[i-1] >= level && col[i] < level
}

func holdSignals(n int) []models.Signal {
	return make([]models.Signal, n)
}
