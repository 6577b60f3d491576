package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// CCIStrategy trades channel re-entries: Buy when CCI crosses up through
// -threshold, Sell when it crosses down through +threshold.
type CCIStrategy struct {
}

func NewCCIStrategy() CCIStrategy {
	return CCIStrategy{}
}

func (s *CCIStrategy) Name() string {
	return "cci"
}

func (s *CCIStrategy) parse(params models.Params) (int, float64, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (period, threshold)",
		}
	}
	period := int(math.Round(params[0]))
	threshold := params[1]
	if period < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "period must be at least 2",
		}
	}
	if threshold <= 0 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "threshold must be positive",
		}
	}
	return period, threshold, nil
}

func (s *CCIStrategy) Warmup(params models.Params) (int, error) {
	period, _, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return period, nil
}

func (s *CCIStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	period, threshold, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	cci := indicators.CCI(dataset, period)

	signals := holdSignals(dataset.Len())
	for i := period; i < dataset.Len(); i++ {
		if crossedUpLevel(cci, -threshold, i) {
			signals[i] = models.SignalBuy
		} else if crossedDownLevel(cci, threshold, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
