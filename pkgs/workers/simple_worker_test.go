package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleWorker_BasicUsage(t *testing.T) {
	worker := NewSimpleWorker[int, int](3)

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	result := worker.Process(context.Background(), items, func(ctx context.Context, item int) int {
		return item * item
	})

	require.NoError(t, result.Error)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36, 49, 64, 81, 100}, result.Results)
	assert.Equal(t, int64(10), result.Stats.Produced)
	assert.Equal(t, int64(10), result.Stats.Consumed)
}

func TestSimpleWorker_Concurrency(t *testing.T) {
	worker := NewSimpleWorker[int, struct{}](4)

	var running, peak atomic.Int32
	worker.Process(context.Background(), make([]int, 16), func(ctx context.Context, item int) struct{} {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		return struct{}{}
	})

	assert.LessOrEqual(t, peak.Load(), int32(4))
	assert.Greater(t, peak.Load(), int32(1))
}

func TestSimpleWorker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker := NewSimpleWorker[int, int](0)
	result := worker.Process(ctx, []int{1, 2, 3}, func(ctx context.Context, item int) int {
		return item
	})

	assert.ErrorIs(t, result.Error, context.Canceled)
	assert.Equal(t, int64(len(result.Skipped)), 3-result.Stats.Produced)
	for _, i := range result.Skipped {
		assert.Zero(t, result.Results[i])
	}
}

func TestSimpleWorker_Empty(t *testing.T) {
	result := NewSimpleWorker[string, string](2).Process(context.Background(), nil, func(ctx context.Context, item string) string {
		return item
	})
	assert.Empty(t, result.Results)
	assert.NoError(t, result.Error)
}
