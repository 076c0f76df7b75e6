package wave_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/delaneyj/tickwave/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a task already in flight swallows re-triggers instead of spawning a
// second execution; once reaped it can be started again
func TestTaskAtMostOneInFlight(t *testing.T) {
	w := newTestWorld(t)

	t0 := wave.State(w, 0)
	var started atomic.Int32
	release := make(chan struct{})
	task := wave.TaskFn(w, func(_ wave.Tuple) (wave.Batch, error) {
		started.Add(1)
		<-release
		return wave.Batch{}, nil
	}, nil, []wave.Handle{t0})

	w.RunTick()

	require.NoError(t, w.Trigger(t0))
	require.NoError(t, w.Trigger(t0))
	w.RunTick()
	assert.True(t, w.Context().Running.Contains(task))

	// re-trigger while running: coalesced, no second execution
	require.NoError(t, w.Trigger(t0))
	w.RunTick()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), started.Load())
	assert.True(t, w.Context().Running.Contains(task))

	close(release)
	require.Eventually(t, func() bool {
		w.RunTick()
		return !w.Context().Running.Contains(task)
	}, time.Second, 5*time.Millisecond)

	// triggered again after completion: exactly one new execution
	require.NoError(t, w.Trigger(t0))
	w.RunTick()
	require.Eventually(t, func() bool {
		return started.Load() == 2
	}, time.Second, 5*time.Millisecond)
}

// a task's batch is applied by a later tick's pipeline, never by the
// task goroutine itself
func TestTaskBatchLandsViaPipeline(t *testing.T) {
	w := newTestWorld(t)

	t0 := wave.State(w, 0)
	out := wave.State(w, 0)
	wave.TaskFn(w, func(_ wave.Tuple) (wave.Batch, error) {
		var b wave.Batch
		b.Send(out, 42)
		return b, nil
	}, nil, []wave.Handle{t0})

	w.RunTick()
	require.NoError(t, w.Trigger(t0))
	w.RunTick()

	require.Eventually(t, func() bool {
		w.RunTick()
		v, err := wave.Read[int](w, out)
		return err == nil && v == 42
	}, time.Second, 5*time.Millisecond)
}

// a restarted task reads live state, not a snapshot captured when the
// earlier trigger arrived
func TestTaskRestartSeesFreshState(t *testing.T) {
	w := newTestWorld(t)

	t0 := wave.State(w, 0)
	src := wave.State(w, 1)
	var seen atomic.Int64
	wave.Task1(w, func(v int) (wave.Batch, error) {
		seen.Store(int64(v))
		return wave.Batch{}, nil
	}, src, t0)

	w.RunTick()
	require.NoError(t, w.Trigger(t0))
	w.RunTick()
	require.Eventually(t, func() bool {
		w.RunTick()
		return seen.Load() == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, wave.Send(w, src, 99))
	w.RunTick()
	require.NoError(t, w.Trigger(t0))
	w.RunTick()
	require.Eventually(t, func() bool {
		w.RunTick()
		return seen.Load() == 99
	}, time.Second, 5*time.Millisecond)
}

// a failing task records an error and clears its running mark
func TestTaskFailureIsReapedAsError(t *testing.T) {
	var failures atomic.Int32
	w := wave.NewWorld(func(_ wave.Handle, _ error) {
		failures.Add(1)
	})
	wave.RegisterType[int](w)

	t0 := wave.State(w, 0)
	task := wave.TaskFn(w, func(_ wave.Tuple) (wave.Batch, error) {
		panic("boom")
	}, nil, []wave.Handle{t0})

	w.RunTick()
	require.NoError(t, w.Trigger(t0))
	w.RunTick()

	require.Eventually(t, func() bool {
		w.RunTick()
		return !w.Context().Running.Contains(task) && failures.Load() > 0
	}, time.Second, 5*time.Millisecond)
}
