package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// MACrossStrategy trades simple moving average crossovers: Buy when the
// short SMA crosses above the long SMA, Sell on the reverse crossover.
type MACrossStrategy struct {
}

func NewMACrossStrategy() MACrossStrategy {
	return MACrossStrategy{}
}

func (s *MACrossStrategy) Name() string {
	return "ma_cross"
}

func (s *MACrossStrategy) periods(params models.Params) (int, int, error) {
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

func (s *MACrossStrategy) Warmup(params models.Params) (int, error) {
	_, long, err := s.periods(params)
	if err != nil {
		return 0, err
	}
	return long, nil
}

func (s *MACrossStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	short, long, err := s.periods(params)
	if err != nil {
		return nil, err
	}

	fast := indicators.SMA(dataset, short)
	slow := indicators.SMA(dataset, long)

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
