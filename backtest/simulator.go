// Package backtest replays signal sequences into trades and reduces the
// resulting equity curves to performance metrics.
package backtest

import (
	"gitlab.com/aquantlab/gridbot/models"
)

// Simulate replays signals through a long-only Flat/Long state machine.
// A Buy deploys all cash minus commission into one position; a Sell
// liquidates it with commission deducted from the proceeds. Orders that
// would drive cash negative are silently rejected. The returned equity curve
// covers bars [warmup, len) so its length is len(bars)-warmup. A position
// still open after the last bar is liquidated at the final close so every
// trade has an exit strictly after its entry; a Buy on the final bar is
// ignored for the same reason.
func Simulate(dataset *models.MarketDataset, signals []models.Signal, warmup int, initialCash, commissionRate float64) (models.EquityCurve, []models.Trade, error) {
	n := dataset.Len()
	if len(signals) != n {
		return nil, nil, &models.DataQualityError{Reason: "signal count does not match bar count"}
	}
	if warmup < 0 || warmup >= n {
		return nil, nil, &models.DataQualityError{Reason: "warm-up window exceeds series length"}
	}
	if initialCash <= 0 || commissionRate < 0 || commissionRate >= 1 {
		return nil, nil, &models.ComputationError{Stage: "simulate", Reason: "invalid cash or commission configuration"}
	}

	cash := initialCash
	quantity := 0.0
	entryBar := 0
	entryPrice := 0.0
	entryCommission := 0.0

	curve := make(models.EquityCurve, 0, n-warmup)
	trades := []models.Trade{}

	for i := warmup; i < n; i++ {
		price := dataset.Bar(i).Close

		switch signals[i] {
		case models.SignalBuy:
			// An entry on the final bar could never exit.
			if quantity == 0 && i < n-1 {
				commission := cash * commissionRate
				invest := cash - commission
				if invest > 0 {
					quantity = invest / price
					entryBar = i
					entryPrice = price
					entryCommission = commission
					cash = 0
				}
			}
		case models.SignalSell:
			if quantity > 0 {
				proceeds := quantity * price
				commission := proceeds * commissionRate
				cash = proceeds - commission
				trades = append(trades, models.Trade{
					Side:           models.SideLong,
					EntryBar:       entryBar,
					EntryPrice:     entryPrice,
					ExitBar:        i,
					ExitPrice:      price,
					Quantity:       quantity,
					CommissionPaid: entryCommission + commission,
				})
				quantity = 0
			}
		}

		curve = append(curve, cash+quantity*price)
	}

	if quantity > 0 {
		price := dataset.Bar(n - 1).Close
		proceeds := quantity * price
		commission := proceeds * commissionRate
		cash = proceeds - commission
		trades = append(trades, models.Trade{
			Side:           models.SideLong,
			EntryBar:       entryBar,
			EntryPrice:     entryPrice,
			ExitBar:        n - 1,
			ExitPrice:      price,
			Quantity:       quantity,
			CommissionPaid: entryCommission + commission,
		})
		curve[len(curve)-1] = cash
	}

	return curve, trades, nil
}
