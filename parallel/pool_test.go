package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/rescale/parallel"
)

func TestBandsCoverDisjointly(t *testing.T) {
	for _, tc := range []struct{ height, n int }{
		{1, 1}, {10, 3}, {10, 10}, {3, 8}, {1000, 7}, {48, 4},
	} {
		bands := parallel.Bands(tc.height, tc.n)
		require.NotEmpty(t, bands, `height %d workers %d`, tc.height, tc.n)
		assert.LessOrEqual(t, len(bands), tc.n)
		prev := 0
		for _, b := range bands {
			require.Equal(t, prev, b[0], `gap or overlap at %v`, b)
			require.Greater(t, b[1], b[0])
			prev = b[1]
		}
		assert.Equal(t, tc.height, prev)
	}
}

func TestBandsEmptyHeight(t *testing.T) {
	assert.Empty(t, parallel.Bands(0, 4))
	assert.Empty(t, parallel.Bands(-3, 4))
}

func TestRunExecutesAllTasks(t *testing.T) {
	var n atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { n.Add(1) }
	}
	parallel.NewPool(8).Run(tasks)
	assert.EqualValues(t, 100, n.Load())
}

func TestRunNilPoolSequential(t *testing.T) {
	order := make([]int, 0, 5)
	tasks := make([]func(), 5)
	for i := range tasks {
		tasks[i] = func() { order = append(order, i) }
	}
	var p *parallel.Pool
	p.Run(tasks)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Equal(t, 1, p.Workers())
}

func TestNewPoolClampsWorkers(t *testing.T) {
	assert.Equal(t, 1, parallel.NewPool(0).Workers())
	assert.Equal(t, 6, parallel.NewPool(6).Workers())
}
