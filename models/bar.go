package models

import (
	"math"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// MarketBar is a single OHLCV record. Bars are value types and are never
// mutated after dataset construction.
type MarketBar struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// MarketDataset is an immutable, ordered bar sequence. Construction validates
// the series once so every downstream component can assume clean input.
type MarketDataset struct {
	bars   []MarketBar
	series *techan.TimeSeries
}

// NewMarketDataset copies and validates the given bars. Timestamps must be
// strictly increasing and every OHLCV field must be a finite number with
// High >= Low. Violations come back as a *DataQualityError.
func NewMarketDataset(bars []MarketBar) (*MarketDataset, error) {
	if len(bars) == 0 {
		return nil, &DataQualityError{Reason: "empty bar sequence"}
	}

	owned := make([]MarketBar, len(bars))
	copy(owned, bars)

	series := techan.NewTimeSeries()
	for i, bar := range owned {
		if err := checkBar(bar, i); err != nil {
			return nil, err
		}
		if i > 0 && !owned[i-1].Timestamp.Before(bar.Timestamp) {
			return nil, &DataQualityError{
				Reason:   "timestamps not strictly increasing",
				BarIndex: i,
			}
		}

		candle := techan.NewCandle(techan.TimePeriod{Start: bar.Timestamp, End: bar.Timestamp})
		candle.OpenPrice = big.NewDecimal(bar.Open)
		candle.MaxPrice = big.NewDecimal(bar.High)
		candle.MinPrice = big.NewDecimal(bar.Low)
		candle.ClosePrice = big.NewDecimal(bar.Close)
		candle.Volume = big.NewDecimal(bar.Volume)
		series.AddCandle(candle)
	}

	return &MarketDataset{bars: owned, series: series}, nil
}

func checkBar(bar MarketBar, index int) error {
	fields := map[string]float64{
		"open":   bar.Open,
		"high":   bar.High,
		"low":    bar.Low,
		"close":  bar.Close,
		"volume": bar.Volume,
	}
	for name, value := range fields {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return &DataQualityError{Reason: "non-finite " + name, BarIndex: index}
		}
	}
	if bar.Open <= 0 || bar.High <= 0 || bar.Low <= 0 || bar.Close <= 0 {
		return &DataQualityError{Reason: "non-positive price", BarIndex: index}
	}
	if bar.Volume < 0 {
		return &DataQualityError{Reason: "negative volume", BarIndex: index}
	}
	if bar.High < bar.Low {
		return &DataQualityError{Reason: "high below low", BarIndex: index}
	}
	return nil
}

func (d *MarketDataset) Len() int {
	return len(d.bars)
}

func (d *MarketDataset) Bar(index int) MarketBar {
	return d.bars[index]
}

// Bars returns a copy so callers cannot reach the backing array.
func (d *MarketDataset) Bars() []MarketBar {
	out := make([]MarketBar, len(d.bars))
	copy(out, d.bars)
	return out
}

// Series exposes the techan view of the dataset for indicator computation.
// The series shares bar data with the dataset and must not be mutated.
func (d *MarketDataset) Series() *techan.TimeSeries {
	return d.series
}

func (d *MarketDataset) Closes() []float64 {
	out := make([]float64, len(d.bars))
	for i, bar := range d.bars {
		out[i] = bar.Close
	}
	return out
}
