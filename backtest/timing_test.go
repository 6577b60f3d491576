package backtest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeItBusyWork(t *testing.T) {
	timing, err := TimeIt(func() error {
		sum := 0.0
		for i := 0; i < 5_000_000; i++ {
			sum += float64(i)
		}
		_ = sum
		return nil
	})
	require.NoError(t, err)

	assert.Greater(t, timing.WallTime, time.Duration(0))
	assert.GreaterOrEqual(t, timing.CPUEfficiency, 0.0)
	assert.LessOrEqual(t, timing.CPUEfficiency, 100.0)
}

func TestTimeItFlagsSleepAsAnomalous(t *testing.T) {
	timing, err := TimeIt(func() error {
		time.Sleep(60 * time.Millisecond)
		return nil
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, timing.WallTime, 60*time.Millisecond)
	assert.True(t, timing.Anomalous)
}

func TestTimeItPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	timing, err := TimeIt(func() error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Greater(t, timing.WallTime, time.Duration(0))
}

func TestProcessCPUSecondsMonotonic(t *testing.T) {
	before := ProcessCPUSeconds()
	sum := 0.0
	for i := 0; i < 2_000_000; i++ {
		sum += float64(i)
	}
	_ = sum
	after := ProcessCPUSeconds()
	assert.GreaterOrEqual(t, after, before)
}
