package worker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTasks(t *testing.T) {
	p := New(Config{Core: 2, Max: 4, Queue: 10, KeepAlive: time.Second, ShutdownTimeout: time.Second})

	var n atomic.Int32
	for i := 0; i < 20; i++ {
		assert.True(t, p.Submit(func() { n.Add(1) }))
	}
	require.NoError(t, p.Shutdown())
	assert.Equal(t, int32(20), n.Load())
	assert.Equal(t, 0, p.Workers())
}

func TestCallerRunsWhenSaturated(t *testing.T) {
	p := New(Config{Core: 1, Max: 1, Queue: 1, ShutdownTimeout: time.Second})
	release := make(chan struct{})
	started := make(chan struct{})

	p.Submit(func() { close(started); <-release })
	<-started
	p.Submit(func() {}) // fills the queue

	var ranInline bool
	p.Submit(func() { ranInline = true })
	assert.True(t, ranInline, "saturated pool runs the task on the caller")

	close(release)
	require.NoError(t, p.Shutdown())
}

func TestExtraWorkersExpire(t *testing.T) {
	p := New(Config{Core: 1, Max: 3, Queue: 0, KeepAlive: 20 * time.Millisecond, ShutdownTimeout: time.Second})
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(3)
	for i := 0; i < 3; i++ {
		p.Submit(func() { started.Done(); <-release })
	}
	started.Wait()
	assert.Equal(t, 3, p.Workers())

	close(release)
	assert.Eventually(t, func() bool { return p.Workers() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, p.Shutdown())
}

func TestSubmitAfterShutdownIsDiscarded(t *testing.T) {
	p := New(Config{Core: 1, Max: 1, Queue: 1})
	require.NoError(t, p.Shutdown())

	var ran bool
	assert.False(t, p.Submit(func() { ran = true }))
	assert.False(t, ran)
}

func TestShutdownTimesOut(t *testing.T) {
	p := New(Config{Core: 1, Max: 1, Queue: 1, ShutdownTimeout: 20 * time.Millisecond})
	release := make(chan struct{})
	defer close(release)
	p.Submit(func() { <-release })

	assert.ErrorIs(t, p.Shutdown(), ErrShutdownTimeout)
}

func TestPanickingTaskDoesNotKillWorker(t *testing.T) {
	p := New(Config{Core: 1, Max: 1, Queue: 4, ShutdownTimeout: time.Second})
	done := make(chan struct{})
	p.Submit(func() { panic("boom") })
	p.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task after panic never ran")
	}
	require.NoError(t, p.Shutdown())
}
