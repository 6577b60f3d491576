package models

// TradeSide is the direction of a simulated trade. The simulator is long-only.
type TradeSide int

const (
	SideLong TradeSide = iota
)

func (s TradeSide) String() string {
	return "LONG"
}

// Trade is one completed round trip. EntryBar is always strictly below
// ExitBar.
type Trade struct {
	Side           TradeSide
	EntryBar       int
	EntryPrice     float64
	ExitBar        int
	ExitPrice      float64
	Quantity       float64
	CommissionPaid float64
}

// Return is the net fractional profit of the round trip after commission.
func (t Trade) Return() float64 {
	cost := t.EntryPrice * t.Quantity
	if cost == 0 {
		return 0
	}
	proceeds := t.ExitPrice * t.Quantity
	return (proceeds - cost - t.CommissionPaid) / cost
}

// HoldingBars is the number of bars the position was held.
func (t Trade) HoldingBars() int {
	return t.ExitBar - t.EntryBar
}

// EquityCurve is the portfolio value per bar after the warm-up window, so its
// length is len(bars) - warmup.
type EquityCurve []float64
