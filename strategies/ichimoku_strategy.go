package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// IchimokuStrategy trades cloud breakouts: Buy when the close crosses above
// the cloud top, Sell when it crosses below the cloud bottom. Only the
// forward-shifted spans are used, so every referenced value was computed
// from bars at least one shift in the past.
type IchimokuStrategy struct {
}

func NewIchimokuStrategy() IchimokuStrategy {
	return IchimokuStrategy{}
}

func (s *IchimokuStrategy) Name() string {
	return "ichimoku"
}

func (s *IchimokuStrategy) parse(params models.Params) (int, int, int, error) {
	if len(params) != 3 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (tenkan, kijun, senkouB)",
		}
	}
	tenkan := int(math.Round(params[0]))
	kijun := int(math.Round(params[1]))
	senkouB := int(math.Round(params[2]))
	if tenkan < 2 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "tenkan period must be at least 2",
		}
	}
	if tenkan >= kijun || kijun >= senkouB {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "periods must satisfy tenkan < kijun < senkouB",
		}
	}
	return tenkan, kijun, senkouB, nil
}

func (s *IchimokuStrategy) Warmup(params models.Params) (int, error) {
	_, kijun, senkouB, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return senkouB + kijun, nil
}

func (s *IchimokuStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	tenkan, kijun, senkouB, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	cloud := indicators.Ichimoku(dataset, tenkan, kijun, senkouB)
	closes := dataset.Closes()

	n := dataset.Len()
	top := make([]float64, n)
	bottom := make([]float64, n)
	for i := 0; i < n; i++ {
		if indicators.Defined(cloud.SenkouA, i) && indicators.Defined(cloud.SenkouB, i) {
			top[i] = math.Max(cloud.SenkouA[i], cloud.SenkouB[i])
			bottom[i] = math.Min(cloud.SenkouA[i], cloud.SenkouB[i])
		} else {
			top[i] = math.NaN()
			bottom[i] = math.NaN()
		}
	}

	signals := holdSignals(n)
	for i := senkouB + kijun; i < n; i++ {
		if crossedUp(closes, top, i) {
			signals[i] = models.SignalBuy
		} else if crossedDown(closes, bottom, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
