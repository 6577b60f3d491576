package services

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gitlab.com/aquantlab/gridbot/backtest"
	"gitlab.com/aquantlab/gridbot/helpers"
	"gitlab.com/aquantlab/gridbot/interfaces"
	"gitlab.com/aquantlab/gridbot/models"
	"gitlab.com/aquantlab/gridbot/models/analytics"
	"gitlab.com/aquantlab/gridbot/strategies"
)

// OptimizerService sweeps parameter grids across strategy families. Each
// tuple evaluation is pure, so tuples run on a bounded worker pool with no
// shared mutable state; a single deterministic sort after collection makes
// the ranking independent of completion order.
type OptimizerService struct {
	cfg       models.EngineConfig
	grids     map[strategies.Family]strategies.Grid
	cancelled int32
}

func NewOptimizerService(cfg models.EngineConfig) *OptimizerService {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &OptimizerService{
		cfg:   cfg,
		grids: map[strategies.Family]strategies.Grid{},
	}
}

// SetGrid replaces the default grid of one family, for caller-side
// overrides.
func (s *OptimizerService) SetGrid(family strategies.Family, grid strategies.Grid) {
	s.grids[family] = grid
}

// Cancel cooperatively stops the running batch. Already-dispatched tuples
// finish; the flag is checked between tuple dispatches.
func (s *OptimizerService) Cancel() {
	atomic.StoreInt32(&s.cancelled, 1)
}

// OptimizeAll sweeps every family.
func (s *OptimizerService) OptimizeAll(dataset *models.MarketDataset, targetMetric string, topN int) (*analytics.OptimizationRun, error) {
	return s.Optimize(dataset, strategies.AllFamilies(), targetMetric, topN)
}

type scoredResult struct {
	result analytics.StrategyResult
	score  float64
}

// Optimize runs the grid of each requested family, ranks the valid results
// descending by the target metric (ties broken by strategy name, then
// parameter tuple order) and attaches the advisory validation report. Tuple
// failures are logged with the offending parameters and excluded; only a
// fully exhausted grid with zero valid results is an error.
func (s *OptimizerService) Optimize(dataset *models.MarketDataset, families []strategies.Family, targetMetric string, topN int) (*analytics.OptimizationRun, error) {
	if targetMetric == "" {
		targetMetric = s.cfg.TargetMetric
	}
	if _, err := (analytics.Metrics{}).Value(targetMetric); err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = s.cfg.TopN
	}
	atomic.StoreInt32(&s.cancelled, 0)

	// Resolve every family before the monitor and collector exist, so an
	// unknown family cannot leak either of them.
	resolved := make([]interfaces.Strategy, len(families))
	for i, family := range families {
		strategy, err := strategies.StrategyFor(family)
		if err != nil {
			return nil, err
		}
		resolved[i] = strategy
	}

	started := time.Now()
	monitor := NewMonitorService(s.cfg.MonitorInterval)
	monitor.Start()

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.cfg.Workers)
	resultCh := make(chan scoredResult)
	collected := make(chan []scoredResult)
	go func() {
		var all []scoredResult
		for r := range resultCh {
			all = append(all, r)
		}
		collected <- all
	}()

	tried := 0
	for i, family := range families {
		strategy := resolved[i]
		if dataset.Len() < s.cfg.MinBars {
			skip := &models.InsufficientDataError{
				Strategy: strategy.Name(),
				Bars:     dataset.Len(),
				Minimum:  s.cfg.MinBars,
			}
			helpers.Logger.Warnln(fmt.Sprintf("skipping %s: %s", strategy.Name(), skip))
			continue
		}

		grid := s.gridFor(family)
		grid.Each(func(params models.Params) bool {
			if atomic.LoadInt32(&s.cancelled) != 0 {
				return false
			}
			tried++
			tuple := params.Clone()
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				result, err := s.evaluateTuple(dataset, strategy, tuple, targetMetric)
				if err != nil {
					s.logTupleFailure(strategy.Name(), tuple, err)
					return
				}
				resultCh <- result
			}()
			return true
		})
	}

	wg.Wait()
	close(resultCh)
	all := <-collected

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		if all[i].result.StrategyName != all[j].result.StrategyName {
			return all[i].result.StrategyName < all[j].result.StrategyName
		}
		return all[i].result.Parameters.Less(all[j].result.Parameters)
	})

	run := &analytics.OptimizationRun{
		StrategyFamily: familyLabel(families),
		TargetMetric:   targetMetric,
		TuplesTried:    tried,
		Elapsed:        time.Since(started),
		Snapshots:      monitor.Stop(),
	}
	for _, scored := range all {
		run.Results = append(run.Results, scored.result)
	}
	if len(run.Results) == 0 {
		return nil, &models.EmptyResultSetError{Family: run.StrategyFamily}
	}
	if topN > len(run.Results) {
		topN = len(run.Results)
	}
	run.TopResults = run.Results[:topN]

	validator := NewValidationService(s.cfg.Validation)
	run.Report = validator.Validate(run)

	helpers.Logger.Infoln(fmt.Sprintf("optimized %s: %d/%d tuples valid in %s, best %s=%.4f",
		run.StrategyFamily, len(run.Results), tried, run.Elapsed, targetMetric, all[0].score))
	return run, nil
}

func (s *OptimizerService) gridFor(family strategies.Family) strategies.Grid {
	if grid, ok := s.grids[family]; ok {
		return grid
	}
	return strategies.GridFor(family)
}

func (s *OptimizerService) evaluateTuple(dataset *models.MarketDataset, strategy interfaces.Strategy, params models.Params, targetMetric string) (scoredResult, error) {
	var result analytics.StrategyResult

	timing, err := backtest.TimeIt(func() error {
		warmup, err := strategy.Warmup(params)
		if err != nil {
			return err
		}
		if warmup >= dataset.Len() {
			return &models.InsufficientDataError{
				Strategy: strategy.Name(),
				Bars:     dataset.Len(),
				Minimum:  warmup + 1,
			}
		}

		signals, err := strategy.GenerateSignals(dataset, params)
		if err != nil {
			return err
		}
		curve, trades, err := backtest.Simulate(dataset, signals, warmup, s.cfg.InitialBalance, s.cfg.CommissionRate)
		if err != nil {
			return err
		}
		metrics, err := backtest.Evaluate(curve, trades, s.cfg.Annualization)
		if err != nil {
			return err
		}

		result = analytics.StrategyResult{
			StrategyName: strategy.Name(),
			Parameters:   params,
			Metrics:      metrics,
			Trades:       trades,
		}
		return nil
	})
	if err != nil {
		return scoredResult{}, err
	}

	if timing.Anomalous {
		helpers.Logger.Warnln(fmt.Sprintf("%s%s: %.0f%% cpu over %s wall time in a pure in-memory evaluation",
			strategy.Name(), params, timing.CPUEfficiency, timing.WallTime))
	}
	result.Timing = timing

	score, err := result.Metrics.Value(targetMetric)
	if err != nil {
		return scoredResult{}, err
	}
	return scoredResult{result: result, score: score}, nil
}

func (s *OptimizerService) logTupleFailure(name string, params models.Params, err error) {
	var dataErr *models.DataQualityError
	var paramErr *models.ParameterValidationError
	var compErr *models.ComputationError
	var shortErr *models.InsufficientDataError

	switch {
	case errors.As(err, &dataErr), errors.As(err, &paramErr),
		errors.As(err, &compErr), errors.As(err, &shortErr):
		helpers.Logger.Warnln(fmt.Sprintf("excluding %s%s: %s", name, params, err))
	default:
		helpers.Logger.Errorln(fmt.Sprintf("excluding %s%s: unexpected: %s", name, params, err))
	}
}

func familyLabel(families []strategies.Family) string {
	if len(families) == 1 {
		return families[0].String()
	}
	return "all"
}
