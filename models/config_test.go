package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnualizationForInterval(t *testing.T) {
	assert.InDelta(t, 252, AnnualizationForInterval(24*time.Hour), 1e-9)
	assert.InDelta(t, 365*24, AnnualizationForInterval(time.Hour), 1e-9)
	assert.InDelta(t, 365*24*4, AnnualizationForInterval(15*time.Minute), 1e-9)
	assert.InDelta(t, 126, AnnualizationForInterval(48*time.Hour), 1e-9)
	assert.InDelta(t, 252, AnnualizationForInterval(0), 1e-9)
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.Equal(t, 10000.0, cfg.InitialBalance)
	assert.Equal(t, 0.0014, cfg.CommissionRate)
	assert.Equal(t, 100, cfg.MinBars)
	assert.Equal(t, "sharpe_ratio", cfg.TargetMetric)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.Equal(t, 10, cfg.Validation.MinResults)
}
