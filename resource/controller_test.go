package resource

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(50))
	assert.Equal(t, int64(50), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Limit exceeded, usage unchanged
	assert.ErrorIs(t, c.AcquireMemory(20), ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(20))
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())

	// Non-positive sizes are ignored
	require.NoError(t, c.AcquireMemory(-5))
	c.ReleaseMemory(0)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_Workers(t *testing.T) {
	c := NewController(Config{MaxWorkers: 2})
	assert.Equal(t, 2, c.MaxWorkers())

	assert.True(t, c.TryAcquireWorker())
	require.NoError(t, c.AcquireWorker(t.Context()))
	assert.False(t, c.TryAcquireWorker())

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireWorker(ctx), context.DeadlineExceeded)

	c.ReleaseWorker()
	assert.True(t, c.TryAcquireWorker())
}

func TestController_DefaultWorkers(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, runtime.GOMAXPROCS(0), c.MaxWorkers())
}

func TestController_TrialPacing(t *testing.T) {
	c := NewController(Config{TrialsPerSecond: 50})
	assert.InDelta(t, 50.0, c.TrialsPerSecond(), 1e-9)

	start := time.Now()
	for range 3 {
		require.NoError(t, c.WaitTrial(t.Context()))
	}
	// Burst of one: the 2nd and 3rd trial each wait ~20ms.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireMemory(1<<40))
	c.ReleaseMemory(1 << 40)
	assert.Zero(t, c.MemoryUsage())
	assert.Zero(t, c.MemoryLimit())
	assert.True(t, c.TryAcquireWorker())
	require.NoError(t, c.AcquireWorker(t.Context()))
	c.ReleaseWorker()
	require.NoError(t, c.WaitTrial(t.Context()))
	assert.Zero(t, c.TrialsPerSecond())
	assert.Equal(t, runtime.GOMAXPROCS(0), c.MaxWorkers())
}
