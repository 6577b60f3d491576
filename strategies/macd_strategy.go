package strategies

import (
	"math"

	"gitlab.com/aquantlab/gridbot/indicators"
	"gitlab.com/aquantlab/gridbot/models"
)

// MACDStrategy trades MACD line crossings of its signal line.
type MACDStrategy struct {
}

func NewMACDStrategy() MACDStrategy {
	return MACDStrategy{}
}

func (s *MACDStrategy) Name() string {
	return "macd"
}

func (s *MACDStrategy) parse(params models.Params) (int, int, int, error) {
	if len(params) != 3 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "expects (fast, slow, signal)",
		}
	}
	fast := int(math.Round(params[0]))
	slow := int(math.Round(params[1]))
	signal := int(math.Round(params[2]))
	if fast < 2 || signal < 2 {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "fast and signal periods must be at least 2",
		}
	}
	if fast >= slow {
		return 0, 0, 0, &models.ParameterValidationError{
			Strategy: s.Name(),
			Params:   params,
			Reason:   "fast period must be below slow period",
		}
	}
	return fast, slow, signal, nil
}

func (s *MACDStrategy) Warmup(params models.Params) (int, error) {
	_, slow, signal, err := s.parse(params)
	if err != nil {
		return 0, err
	}
	return slow + signal - 1, nil
}

func (s *MACDStrategy) GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error) {
	fast, slow, signal, err := s.parse(params)
	if err != nil {
		return nil, err
	}

	line, signalLine := indicators.MACD(dataset, fast, slow, signal)

	signals := holdSignals(dataset.Len())
	for i := slow + signal - 1; i < dataset.Len(); i++ {
		if crossedUp(line, signalLine, i) {
			signals[i] = models.SignalBuy
		} else if crossedDown(line, signalLine, i) {
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
