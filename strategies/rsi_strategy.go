package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// RSIStrategy trades oversold/overbought reversals: Buy when RSI crosses up
// through the oversold level, Sell when it crosses down through the
// overbought level.
type RSIStrategy struct {
}

func NewRSIStrategy() RSIStrategy {
	return RSIStrategy{}
}

func (s *RSIStrategy) Name() string {
	return "rsi"
}

func (s *RSIStrategy) parse(params models.Params) (int, float64, float64, error) {
	if len(params) != 3 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (period, oversold, overbought)",
		}
	}
	period := int(math.Round(params[0]))
	oversold := params[1]
	overbought := params[2]
	if period < 2 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "period must be at least 2",
		}
	}
	if oversold <= 0 || overbought >= 100 || oversold >= overbought {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "levels must satisfy 0 < oversold < overbought < 100",
		}
	}
	return period, oversold, overbought, nil
}

func (s *RSIStrategy) Warmup(params models.Params) (int, error) {
	period, _, _, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return period + 1, nil
}

func (s *RSIStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	period, oversold, overbought, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	rsi := indicators.RSI(dataset, period)

	signals := holdSignals(dataset.Len())
	for i := period + 1; i < dataset.Len(); i++ {
		if crossedUpLevel(rsi, oversold, i) {
			signals[i] = models.SignalBuy
		} else if crossedDownLevel(rsi, overbought, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
