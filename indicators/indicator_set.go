package indicators

import (
	"fmt"
	"math"

	"gitlab.com/aquantlab/gridbot/models"
)

// Spec selects which indicator columns Compute materializes. Zero-valued
// sections are skipped.
type Spec struct {
	SMA       []int
	EMA       []int
	RSI       []int
	MACD      []MACDSpec
	Bollinger []BollingerSpec
	KDJ       []KDJSpec
	CCI       []int
	ADX       []int
	ATR       []int
	OBV       bool
	Ichimoku  []IchimokuSpec
	PSAR      []PSARSpec
}

type MACDSpec struct {
	Fast   int
	Slow   int
	Signal int
}

type BollingerSpec struct {
	Period int
	K      float64
}

type KDJSpec struct {
	KPeriod int
	DPeriod int
}

type IchimokuSpec struct {
	Tenkan  int
	Kijun   int
	SenkouB int
}

type PSARSpec struct {
	Accel    float64
	MaxAccel float64
}

// Set is a per-bar mapping from indicator name to value column. NaN marks
// the warm-up window.
type Set struct {
	length int
	names  []string
	cols   map[string][]float64
}

func (s *Set) Len() int {
	return s.length
}

// Names returns column names in insertion order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Set) Column(name string) ([]float64, bool) {
	col, ok := s.cols[name]
	return col, ok
}

// Value returns NaN for unknown names or warm-up indices.
func (s *Set) Value(name string, index int) float64 {
	col, ok := s.cols[name]
	if !ok || index < 0 || index >= len(col) {
		return math.NaN()
	}
	return col[index]
}

func (s *Set) add(name string, col []float64) {
	if _, exists := s.cols[name]; exists {
		return
	}
	s.names = append(s.names, name)
	s.cols[name] = col
}

// Compute materializes every column the spec asks for. Invalid window
// parameters come back as *models.ParameterValidationError.
func Compute(dataset *models.MarketDataset, spec Spec) (*Set, error) {
	set := &Set{length: dataset.Len(), cols: map[string][]float64{}}

	for _, p := range spec.SMA {
		if err := checkPeriod("sma", p); err != nil {
			return nil, err
		}
		set.add(fmt.Sprintf("sma_%d", p), SMA(dataset, p))
	}
	for _, p := range spec.EMA {
		if err := checkPeriod("ema", p); err != nil {
			return nil, err
		}
		set.add(fmt.Sprintf("ema_%d", p), EMA(dataset, p))
	}
	for _, p := range spec.RSI {
		if err := checkPeriod("rsi", p); err != nil {
			return nil, err
		}
		set.add(fmt.Sprintf("rsi_%d", p), RSI(dataset, p))
	}
	for _, m := range spec.MACD {
		if err := checkPeriod("macd", m.Fast); err != nil {
			return nil, err
		}
		if m.Fast >= m.Slow {
			return nil, &models.ParameterValidationError{
				Strategy: "macd",
				Params:   models.Params{float64(m.Fast), float64(m.Slow), float64(m.Signal)},
				Reason:   "fast period must be below slow period",
			}
		}
		line, signal := MACD(dataset, m.Fast, m.Slow, m.Signal)
		set.add(fmt.Sprintf("macd_%d_%d", m.Fast, m.Slow), line)
		set.add(fmt.Sprintf("macd_signal_%d_%d_%d", m.Fast, m.Slow, m.Signal), signal)
	}
	for _, b := range spec.Bollinger {
		if err := checkPeriod("bollinger", b.Period); err != nil {
			return nil, err
		}
		middle, upper, lower := Bollinger(dataset, b.Period, b.K)
		set.add(fmt.Sprintf("boll_mid_%d", b.Period), middle)
		set.add(fmt.Sprintf("boll_up_%d_%g", b.Period, b.K), upper)
		set.add(fmt.Sprintf("boll_low_%d_%g", b.Period, b.K), lower)
	}
	for _, s := range spec.KDJ {
		if err := checkPeriod("kdj", s.KPeriod); err != nil {
			return nil, err
		}
		k, d, j := KDJ(dataset, s.KPeriod, s.DPeriod)
		set.add(fmt.Sprintf("kdj_k_%d", s.KPeriod), k)
		set.add(fmt.Sprintf("kdj_d_%d_%d", s.KPeriod, s.DPeriod), d)
		set.add(fmt.Sprintf("kdj_j_%d_%d", s.KPeriod, s.DPeriod), j)
	}
	for _, p := range spec.CCI {
		if err := checkPeriod("cci", p); err != nil {
			return nil, err
		}
		set.add(fmt.Sprintf("cci_%d", p), CCI(dataset, p))
	}
	for _, p := range spec.ADX {
		if err := checkPeriod("adx", p); err != nil {
			return nil, err
		}
		plusDI, minusDI, adx := ADX(dataset, p)
		set.add(fmt.Sprintf("plus_di_%d", p), plusDI)
		set.add(fmt.Sprintf("minus_di_%d", p), minusDI)
		set.add(fmt.Sprintf("adx_%d", p), adx)
	}
	for _, p := range spec.ATR {
		if err := checkPeriod("atr", p); err != nil {
			return nil, err
		}
		set.add(fmt.Sprintf("atr_%d", p), ATR(dataset, p))
	}
	if spec.OBV {
		set.add("obv", OBV(dataset))
	}
	for _, ich := range spec.Ichimoku {
		if err := checkPeriod("ichimoku", ich.Tenkan); err != nil {
			return nil, err
		}
		cloud := Ichimoku(dataset, ich.Tenkan, ich.Kijun, ich.SenkouB)
		prefix := fmt.Sprintf("%d_%d_%d", ich.Tenkan, ich.Kijun, ich.SenkouB)
		set.add("tenkan_"+prefix, cloud.Tenkan)
		set.add("kijun_"+prefix, cloud.Kijun)
		set.add("senkou_a_"+prefix, cloud.SenkouA)
		set.add("senkou_b_"+prefix, cloud.SenkouB)
		set.add("chikou_"+prefix, cloud.Chikou)
	}
	for _, p := range spec.PSAR {
		if p.Accel <= 0 || p.Accel >= p.MaxAccel {
			return nil, &models.ParameterValidationError{
				Strategy: "psar",
				Params:   models.Params{p.Accel, p.MaxAccel},
				Reason:   "acceleration must be positive and below the maximum",
			}
		}
		sar, _ := ParabolicSAR(dataset, p.Accel, p.MaxAccel)
		set.add(fmt.Sprintf("psar_%g_%g", p.Accel, p.MaxAccel), sar)
	}
	return set, nil
}

func checkPeriod(name string, period int) error {
	if period < 1 {
		return &models.ParameterValidationError{
			Strategy: name,
			Params:   models.Params{float64(period)},
			Reason:   "period must be at least 1",
		}
	}
	return nil
}
