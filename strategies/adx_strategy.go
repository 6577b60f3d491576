package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// ADXStrategy trades +DI/-DI crossovers, entering only while ADX reports a
// trend at or above the configured floor.
type ADXStrategy struct {
}

func NewADXStrategy() ADXStrategy {
	return ADXStrategy{}
}

func (s *ADXStrategy) Name() string {
	return "adx"
}

func (s *ADXStrategy) parse(params models.Params) (int, float64, error) {
	if len(params) != 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (period, adxFloor)",
		}
	}
	period := int(math.Round(params[0]))
	floor := params[1]
	if period < 2 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "period must be at least 2",
		}
	}
	if floor < 0 || floor > 100 {
		return 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "adx floor must be in [0,100]",
		}
	}
	return period, floor, nil
}

func (s *ADXStrategy) Warmup(params models.Params) (int, error) {
	period, _, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return 2 * period, nil
}

func (s *ADXStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	period, floor, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	plusDI, minusDI, adx := indicators.ADX(dataset, period)

	signals := holdSignals(dataset.Len())
	for i := 2 * period; i < dataset.Len(); i++ {
		if crossedUp(plusDI, minusDI, i) && indicators.Defined(adx, i) && adx[i] >= floor {
			signals[i] = models.SignalBuy
		} else if crossedDown(plusDI, minusDI, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
