package models

import "fmt"

// DataQualityError reports malformed input bars: unordered timestamps,
// non-finite OHLCV fields, or an empty series.
type DataQualityError struct {
	Reason   string
	BarIndex int
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality: %s (bar %d)", e.Reason, e.BarIndex)
}

// ParameterValidationError reports a parameter tuple a strategy cannot
// accept. The grid expander filters these at generation time, so seeing one
// normally means a caller bypassed the grid.
type ParameterValidationError struct {
	Strategy string
	Params   Params
	Reason   string
}

func (e *ParameterValidationError) Error() string {
	return fmt.Sprintf("invalid parameters %s for %s: %s", e.Params, e.Strategy, e.Reason)
}

// ComputationError reports an unguarded numeric failure surfacing from an
// evaluation, such as a non-finite metric.
type ComputationError struct {
	Stage  string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation failed in %s: %s", e.Stage, e.Reason)
}

// InsufficientDataError reports a series shorter than a strategy's configured
// minimum bar count.
type InsufficientDataError struct {
	Strategy string
	Bars     int
	Minimum  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s needs %d bars, got %d", e.Strategy, e.Minimum, e.Bars)
}

// EmptyResultSetError reports a grid exhausted with zero valid results.
type EmptyResultSetError struct {
	Family string
}

func (e *EmptyResultSetError) Error() string {
	return fmt.Sprintf("optimization of %s produced no valid results", e.Family)
}
