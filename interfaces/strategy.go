package interfaces

import (
	"gitlab.com/aquantlab/gridbot/models"
)

type (
	// Strategy turns a dataset into one Buy/Sell/Hold signal per bar for a
	// given parameter tuple. Implementations are deterministic, use no bar
	// beyond the signal's own index, and emit Hold through the warm-up
	// window.
	Strategy interface {
		Name() string
		// Warmup is the number of leading bars that can only ever be
		// Hold for the tuple. Invalid tuples return a
		// *models.ParameterValidationError.
		Warmup(params models.Params) (int, error)
		GenerateSignals(dataset *models.MarketDataset, params models.Params) ([]models.Signal, error)
	}
)
