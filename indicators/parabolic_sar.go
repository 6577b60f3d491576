package indicators

import (
	"gitlab.com/aquantlab/gridbot/models"
)

// psarState is the per-bar state of the parabolic SAR fold.
type psarState struct {
	uptrend bool
	sar     float64
	extreme float64
	af      float64
}

// ParabolicSAR is a sequential fold, not a rolling window: each bar's stop
// value depends on the previous bar's (trend, extreme point, acceleration
// factor). A trend reversal resets the acceleration factor and re-seeds the
// extreme point from the reversal bar. SAR is defined from index 1; Uptrend
// mirrors the trend the stop is protecting.
func ParabolicSAR(dataset *models.MarketDataset, accel, maxAccel float64) (sar []float64, uptrend []bool) {
	n := dataset.Len()
	sar = nanColumn(n)
	uptrend = make([]bool, n)
	if n < 2 {
		return sar, uptrend
	}

	first := dataset.Bar(0)
	second := dataset.Bar(1)

	state := psarState{
		uptrend: second.Close >= first.Close,
		af:      accel,
	}
	if state.uptrend {
		state.sar = first.Low
		state.extreme = maxFloat(first.High, second.High)
	} else {
		state.sar = first.High
		state.extreme = minFloat(first.Low, second.Low)
	}
	sar[1] = state.sar
	uptrend[1] = state.uptrend

	for i := 2; i < n; i++ {
		bar := dataset.Bar(i)
		next := state.sar + state.af*(state.extreme-state.sar)

		if state.uptrend {
			// The stop may never enter the two previous bars' range.
			next = minFloat(next, dataset.Bar(i-1).Low, dataset.Bar(i-2).Low)
			if bar.Low < next {
				state = psarState{
					uptrend: false,
					sar:     state.extreme,
					extreme: bar.Low,
					af:      accel,
				}
			} else {
				state.sar = next
				if bar.High > state.extreme {
					state.extreme = bar.High
					state.af = minFloat(state.af+accel, maxAccel)
				}
			}
		} else {
			next = maxFloat(next, dataset.Bar(i-1).High, dataset.Bar(i-2).High)
			if bar.High > next {
				state = psarState{
					uptrend: true,
					sar:     state.extreme,
					extreme: bar.High,
					af:      accel,
				}
			} else {
				state.sar = next
				if bar.Low < state.extreme {
					state.extreme = bar.Low
					state.af = minFloat(state.af+accel, maxAccel)
				}
			}
		}

		sar[i] = state.sar
		uptrend[i] = state.uptrend
	}
	return sar, uptrend
}

func minFloat(values ...float64) float64 {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func maxFloat(values ...float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
