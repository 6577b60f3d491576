package strategies

import (
	"fmt"

	"gitlab.com/aquantlab/gridbot/interfaces"
)

// Family identifies one strategy family. Dispatch is over this enum, checked
// at compile time; strings only exist at the CLI boundary via ParseFamily.
type Family int

const (
	FamilyMACross Family = iota
	FamilyRSI
	FamilyMACD
	FamilyBollinger
	FamilyKDJ
	FamilyCCI
	FamilyADX
	FamilyATRBreakout
	FamilyOBV
	FamilyIchimoku
	FamilyPSAR
)

var familyNames = map[Family]string{
	FamilyMACross:     "ma_cross",
	FamilyRSI:         "rsi",
	FamilyMACD:        "macd",
	FamilyBollinger:   "bollinger",
	FamilyKDJ:         "kdj",
	FamilyCCI:         "cci",
	FamilyADX:         "adx",
	FamilyATRBreakout: "atr_breakout",
	FamilyOBV:         "obv",
	FamilyIchimoku:    "ichimoku",
	FamilyPSAR:        "psar",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// AllFamilies returns every family in declaration order, so iterating "all"
// is deterministic.
func AllFamilies() []Family {
	return []Family{
		FamilyMACross,
		FamilyRSI,
		FamilyMACD,
		FamilyBollinger,
		FamilyKDJ,
		FamilyCCI,
		FamilyADX,
		FamilyATRBreakout,
		FamilyOBV,
		FamilyIchimoku,
		FamilyPSAR,
	}
}

// ParseFamily resolves a CLI name to a family.
func ParseFamily(name string) (Family, error) {
	for family, familyName := range familyNames {
		if familyName == name {
			return family, nil
		}
	}
	return 0, fmt.Errorf("%s is not a known strategy family", name)
}

// StrategyFor builds the strategy implementing a family.
func StrategyFor(family Family) (interfaces.Strategy, error) {
	switch family {
	case FamilyMACross:
		maCrossStrategy := NewMACrossStrategy()
		return interfaces.Strategy(&maCrossStrategy), nil
	case FamilyRSI:
		rsiStrategy := NewRSIStrategy()
		return interfaces.Strategy(&rsiStrategy), nil
	case FamilyMACD:
		macdStrategy := NewMACDStrategy()
		return interfaces.Strategy(&macdStrategy), nil
	case FamilyBollinger:
		bollingerStrategy := NewBollingerStrategy()
		return interfaces.Strategy(&bollingerStrategy), nil
	case FamilyKDJ:
		kdjStrategy := NewKDJStrategy()
		return interfaces.Strategy(&kdjStrategy), nil
	case FamilyCCI:
		cciStrategy := NewCCIStrategy()
		return interfaces.Strategy(&cciStrategy), nil
	case FamilyADX:
		adxStrategy := NewADXStrategy()
		return interfaces.Strategy(&adxStrategy), nil
	case FamilyATRBreakout:
		atrBreakoutStrategy := NewATRBreakoutStrategy()
		return interfaces.Strategy(&atrBreakoutStrategy), nil
	case FamilyOBV:
		obvStrategy := NewOBVStrategy()
		return interfaces.Strategy(&obvStrategy), nil
	case FamilyIchimoku:
		ichimokuStrategy := NewIchimokuStrategy()
		return interfaces.Strategy(&ichimokuStrategy), nil
	case FamilyPSAR:
		psarStrategy := NewPSARStrategy()
		return interfaces.Strategy(&psarStrategy), nil
	default:
		return nil, fmt.Errorf("%d is not a known strategy family", int(family))
	}
}
