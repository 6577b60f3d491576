package strategies

import (
	"fmt"
	"math"

	"gitlab.com/aquantlab/gridbot/models"
)

// Range is one parameter axis of a grid: From, From+Step, ... up to To
// inclusive.
type Range struct {
	From float64
	To   float64
	Step float64
}

func (r Range) count() int {
	if r.Step <= 0 || r.To < r.From {
		return 0
	}
	return int(math.Floor((r.To-r.From)/r.Step+1e-9)) + 1
}

func (r Range) value(i int) float64 {
	return r.From + float64(i)*r.Step
}

// Grid is the declarative parameter space of one family: either stepped
// Ranges or explicit per-axis Values. Each walks the space in deterministic
// order, applying the validity predicate at generation time so invalid
// tuples are never yielded. A Grid is a value: walking it twice yields the
// same finite sequence.
type Grid struct {
	Names  []string
	Ranges []Range
	// Values, when set, takes precedence over Ranges and lists each axis
	// explicitly.
	Values [][]float64
	Valid  func(models.Params) bool
}

func (g Grid) axes() int {
	if len(g.Values) > 0 {
		return len(g.Values)
	}
	return len(g.Ranges)
}

func (g Grid) axisCount(axis int) int {
	if len(g.Values) > 0 {
		return len(g.Values[axis])
	}
	return g.Ranges[axis].count()
}

func (g Grid) axisValue(axis, i int) float64 {
	if len(g.Values) > 0 {
		return g.Values[axis][i]
	}
	return g.Ranges[axis].value(i)
}

// Each invokes fn for every valid tuple; fn returning false stops the walk.
// Reports whether the walk ran to completion.
func (g Grid) Each(fn func(models.Params) bool) bool {
	axes := g.axes()
	if axes == 0 {
		return true
	}
	for axis := 0; axis < axes; axis++ {
		if g.axisCount(axis) == 0 {
			return true
		}
	}

	indices := make([]int, axes)
	for {
		params := make(models.Params, axes)
		for axis, idx := range indices {
			params[axis] = g.axisValue(axis, idx)
		}
		if g.Valid == nil || g.Valid(params) {
			if !fn(params) {
				return false
			}
		}

		// Odometer increment, last axis fastest.
		axis := axes - 1
		for axis >= 0 {
			indices[axis]++
			if indices[axis] < g.axisCount(axis) {
				break
			}
			indices[axis] = 0
			axis--
		}
		if axis < 0 {
			return true
		}
	}
}

// Size counts the valid tuples the grid yields.
func (g Grid) Size() int {
	count := 0
	g.Each(func(models.Params) bool {
		count++
		return true
	})
	return count
}

// WithRange replaces one named axis, for caller-side grid overrides.
func (g Grid) WithRange(name string, r Range) (Grid, error) {
	for i, axisName := range g.Names {
		if axisName == name {
			ranges := make([]Range, len(g.Ranges))
			copy(ranges, g.Ranges)
			ranges[i] = r
			return Grid{Names: g.Names, Ranges: ranges, Valid: g.Valid}, nil
		}
	}
	return Grid{}, fmt.Errorf("grid has no parameter named %s", name)
}

// GridFor returns the default grid of a family.
func GridFor(family Family) Grid {
	switch family {
	case FamilyMACross:
		return Grid{
			Names:  []string{"short", "long"},
			Ranges: []Range{{3, 50, 5}, {10, 100, 10}},
			Valid: func(p models.Params) bool {
				return p[0] < p[1]
			},
		}
	case FamilyRSI:
		return Grid{
			Names:  []string{"period", "oversold", "overbought"},
			Ranges: []Range{{7, 28, 7}, {20, 35, 5}, {65, 80, 5}},
			Valid: func(p models.Params) bool {
				return p[1] < p[2]
			},
		}
	case FamilyMACD:
		return Grid{
			Names:  []string{"fast", "slow", "signal"},
			Ranges: []Range{{8, 16, 4}, {20, 32, 6}, {5, 11, 3}},
			Valid: func(p models.Params) bool {
				return p[0] < p[1]
			},
		}
	case FamilyBollinger:
		return Grid{
			Names:  []string{"period", "k"},
			Ranges: []Range{{10, 30, 5}, {1.5, 3.0, 0.5}},
		}
	case FamilyKDJ:
		return Grid{
			Names:  []string{"kPeriod", "dPeriod"},
			Ranges: []Range{{5, 21, 4}, {3, 9, 3}},
		}
	case FamilyCCI:
		return Grid{
			Names:  []string{"period", "threshold"},
			Ranges: []Range{{10, 30, 5}, {80, 160, 40}},
		}
	case FamilyADX:
		return Grid{
			Names:  []string{"period", "adxFloor"},
			Ranges: []Range{{7, 21, 7}, {20, 30, 5}},
		}
	case FamilyATRBreakout:
		return Grid{
			Names:  []string{"period", "mult"},
			Ranges: []Range{{7, 21, 7}, {1.0, 3.0, 0.5}},
		}
	case FamilyOBV:
		return Grid{
			Names:  []string{"short", "long"},
			Ranges: []Range{{3, 15, 4}, {10, 40, 10}},
			Valid: func(p models.Params) bool {
				return p[0] < p[1]
			},
		}
	case FamilyIchimoku:
		return Grid{
			Names:  []string{"tenkan", "kijun", "senkouB"},
			Ranges: []Range{{7, 11, 2}, {22, 30, 4}, {44, 60, 8}},
			Valid: func(p models.Params) bool {
				return p[0] < p[1] && p[1] < p[2]
			},
		}
	case FamilyPSAR:
		return Grid{
			Names:  []string{"accel", "maxAccel"},
			Ranges: []Range{{0.01, 0.05, 0.01}, {0.1, 0.5, 0.1}},
			Valid: func(p models.Params) bool {
				return p[0] < p[1]
			},
		}
	default:
		return Grid{}
	}
}
