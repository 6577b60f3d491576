package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// KDJStrategy trades %K/%D crossovers gated by the %J extreme: crossovers
// inside an already stretched %J are ignored.
type KDJStrategy struct {
}

func NewKDJStrategy() KDJStrategy {
	return KDJStrategy{}
}

func (s *KDJStrategy) Name() string {
	return "kdj"
}

func (s *KDJStrategy) parse(params models.Params) (int, int, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (kPeriod, dPeriod)",
		}
	}
	kPeriod := int(math.Round(params[0]))
	dPeriod := int(math.Round(params[1]))
	if kPeriod < 2 || dPeriod < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "both periods must be at least 2",
		}
	}
	return kPeriod, dPeriod, nil
}

func (s *KDJStrategy) Warmup(params models.Params) (int, error) {
	kPeriod, dPeriod, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return kPeriod + dPeriod - 1, nil
}

func (s *KDJStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	kPeriod, dPeriod, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	k, d, j := indicators.KDJ(dataset, kPeriod, dPeriod)

	signals := holdSignals(dataset.Len())
	for i := kPeriod + dPeriod - 1; i < dataset.Len(); i++ {
		if !indicators.Defined(j, i) {
			continue
		}
		if crossedUp(k, d, i) && j[i] < 80 {
			signals[i] = models.SignalBuy
		} else if crossedDown(k, d, i) && j[i] > 20 {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
