package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/workerpool"
)

func TestPoolRunsTasks(t *testing.T) {
	pool := workerpool.New(4)

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			count.Add(1)
		}))
	}
	wg.Wait()
	pool.Shutdown()

	assert.EqualValues(t, 8, count.Load())
}

func TestPoolFull(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Shutdown()

	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, pool.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	// One busy worker, queue of two.
	require.NoError(t, pool.Submit(func() {}))
	require.NoError(t, pool.Submit(func() {}))
	assert.ErrorIs(t, pool.Submit(func() {}), workerpool.ErrPoolFull)

	close(release)
}

func TestPoolClosed(t *testing.T) {
	pool := workerpool.New(2)
	pool.Shutdown()
	pool.Shutdown()
	assert.ErrorIs(t, pool.Submit(func() {}), workerpool.ErrPoolClosed)
}

func TestPoolSurvivesPanic(t *testing.T) {
	pool := workerpool.New(1)

	var ran atomic.Bool
	require.NoError(t, pool.Submit(func() { panic("boom") }))
	require.NoError(t, pool.Submit(func() { ran.Store(true) }))
	pool.Shutdown()

	assert.True(t, ran.Load())
}
