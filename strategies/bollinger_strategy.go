package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// BollingerStrategy is mean reversion on the bands: Buy when the close
// crosses back above the lower band, Sell when it crosses back below the
// upper band.
type BollingerStrategy struct {
}

func NewBollingerStrategy() BollingerStrategy {
	return BollingerStrategy{}
}

func (s *BollingerStrategy) Name() string {
	return "bollinger"
}

func (s *BollingerStrategy) parse(params models.Params) (int, float64, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (period, k)",
		}
	}
	period := int(math.Round(params[0]))
	k := params[1]
	if period < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "period must be at least 2",
		}
	}
	if k <= 0 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "band width must be positive",
		}
	}
	return period, k, nil
}

func (s *BollingerStrategy) Warmup(params models.Params) (int, error) {
	period, _, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return period, nil
}

func (s *BollingerStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	period, k, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	_, upper, lower := indicators.Bollinger(dataset, period, k)
	closes := dataset.Closes()

	signals := holdSignals(dataset.Len())
	for i := period; i < dataset.Len(); i++ {
		if crossedUp(closes, lower, i) {
			signals[i] = models.SignalBuy
		} else if crossedDown(closes, upper, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
