package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// ATRBreakoutStrategy trades volatility breakouts: Buy when the close moves
// more than mult ATRs above the previous close, Sell on the mirror move
// down. The ATR of the previous bar is used, so the band is known before the
// bar closes.
type ATRBreakoutStrategy struct {
}

func NewATRBreakoutStrategy() ATRBreakoutStrategy {
	return ATRBreakoutStrategy{}
}

func (s *ATRBreakoutStrategy) Name() string {
	return "atr_breakout"
}

func (s *ATRBreakoutStrategy) parse(params models.Params) (int, float64, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (period, mult)",
		}
	}
	period := int(math.Round(params[0]))
	mult := params[1]
	if period < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "period must be at least 2",
		}
	}
	if mult <= 0 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "multiplier must be positive",
		}
	}
	return period, mult, nil
}

func (s *ATRBreakoutStrategy) Warmup(params models.Params) (int, error) {
	period, _, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return period + 1, nil
}

func (s *ATRBreakoutStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	period, mult, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	atr := indicators.ATR(dataset, period)

	signals := holdSignals(dataset.Len())
	for i := period + 1; i < dataset.Len(); i++ {
		if !indicators.Defined(atr, i-1) {
			continue
		}
		prevClose := dataset.Bar(i - 1).Close
		band := mult * atr[i-1]
		if dataset.Bar(i).Close > prevClose+band {
			signals[i] = models.SignalBuy
		} else if dataset.Bar(i).Close < prevClose-band {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
