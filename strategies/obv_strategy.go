package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// OBVStrategy trades volume-flow momentum: a crossover of two moving
// averages of on-balance volume.
type OBVStrategy struct {
}

func NewOBVStrategy() OBVStrategy {
	return OBVStrategy{}
}

func (s *OBVStrategy) Name() string {
	return "obv"
}

func (s *OBVStrategy) periods(params models.Params) (int, int, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (short, long)",
		}
	}
	short := int(math.Round(params[0]))
	long := int(math.Round(params[1]))
	if short < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "short period must be at least 2",
		}
	}
	if short >= long {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "short period must be below long period",
		}
	}
	return short, long, nil
}

func (s *OBVStrategy) Warmup(params models.Params) (int, error) {
	_, long, err := s.periods(params)
	if err != nil {
		return 0, err
	}
	return long, nil
}

func (s *OBVStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	short, long, err := s.periods(params)
	if err != nil {
		return nil, err
	}

	fast, slow := indicators.OBVMovingAverages(dataset, short, long)

	signals := holdSignals(dataset.Len())
	for i := long; i < dataset.Len(); i++ {
		if crossedUp(fast, slow, i) {
			signals[i] = models.SignalBuy
		} else if crossedDown(fast, slow, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
