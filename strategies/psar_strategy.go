package strategies

import (
	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// PSARStrategy trades parabolic SAR trend flips: Buy when the stop flips
// below price, Sell when it flips back above.
type PSARStrategy struct {
}

func NewPSARStrategy() PSARStrategy {
	return PSARStrategy{}
}

func (s *PSARStrategy) Name() string {
	return "psar"
}

func (s *PSARStrategy) parse(params models.Params) (float64, float64, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (accel, maxAccel)",
		}
	}
	accel := params[0]
	maxAccel := params[1]
	if accel <= 0 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "acceleration must be positive",
		}
	}
	if accel >= maxAccel {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "acceleration must be below its maximum",
		}
	}
	return accel, maxAccel, nil
}

func (s *PSARStrategy) Warmup(params models.Params) (int, error) {
	if _, _, err := s.parse(params); err != nil {
		return 0, err
	}
	return 2, nil
}

func (s *PSARStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	accel, maxAccel, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	sar, uptrend := indicators.ParabolicSAR(dataset, accel, maxAccel)

	signals := holdSignals(dataset.Len())
	for i := 2; i < dataset.Len(); i++ {
		if !indicators.Defined(sar, i-1) || !indicators.Defined(sar, i) {
			continue
		}
		if uptrend[i] && !uptrend[i-1] {
			signals[i] = models.SignalBuy
		} else if !uptrend[i] && uptrend[i-1] {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
