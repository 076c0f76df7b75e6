package wave_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/tickwave/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a failing derivation stores its error as an observable value and
// still notifies downstream consumers
func TestDerivationFailureIsAValue(t *testing.T) {
	w := newTestWorld(t)

	boom := errors.New("negative input")
	s := wave.State(w, 1)
	c := wave.Computed1(w, func(v int) (int, error) {
		if v < 0 {
			return 0, boom
		}
		return v * 2, nil
	}, s)

	downstream := 0
	sawAbsent := false
	wave.EffectFn(w, func(args wave.Tuple, _ *wave.World) error {
		downstream++
		// the stored failure materializes as an absent field
		if !args.Present(0) {
			sawAbsent = true
		}
		return nil
	}, []wave.Handle{c}, nil)

	w.RunTick()
	require.Equal(t, 1, downstream)

	require.NoError(t, wave.Send(w, s, -5))
	w.RunTick()

	_, err := wave.Read[int](w, c)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, downstream)
	assert.True(t, sawAbsent)
	require.NotEmpty(t, w.Context().Errors)
	assert.Equal(t, wave.PhaseCalculateMemos, w.Context().Errors[0].Phase)

	// recovery: a good value replaces the stored failure
	require.NoError(t, wave.Send(w, s, 3))
	w.RunTick()
	v, err := wave.Read[int](w, c)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

// an effect failure is recorded without aborting the rest of the tick
func TestEffectFailureDoesNotAbortTick(t *testing.T) {
	w := newTestWorld(t)

	s := wave.State(w, 0)
	okRuns := 0
	wave.Effect1(w, func(_ int, _ *wave.World) error {
		return errors.New("effect exploded")
	}, s)
	wave.Effect1(w, func(_ int, _ *wave.World) error {
		okRuns++
		return nil
	}, s)

	w.RunTick()
	require.NoError(t, wave.Send(w, s, 1))
	w.RunTick()

	assert.Equal(t, 1, okRuns)
	require.Len(t, w.Context().Errors, 1)
	assert.Equal(t, wave.PhaseApplyEffects, w.Context().Errors[0].Phase)
}

// a panicking derivation is caught at the phase boundary
func TestPanicInDerivationIsContained(t *testing.T) {
	w := newTestWorld(t)

	s := wave.State(w, 0)
	c := wave.Computed1(w, func(v int) (int, error) {
		if v == 13 {
			panic("unlucky")
		}
		return v, nil
	}, s)
	other := wave.Computed1(w, func(v int) (int, error) { return v + 1, nil }, s)

	w.RunTick()
	require.NoError(t, wave.Send(w, s, 13))
	w.RunTick()

	_, err := wave.Read[int](w, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unlucky")

	// the unaffected subgraph still propagated
	v, err := wave.Read[int](w, other)
	require.NoError(t, err)
	assert.Equal(t, 14, v)
}

// a computed whose source was destroyed surfaces a read failure value
func TestDestroyedSourceBecomesErrorValue(t *testing.T) {
	w := newTestWorld(t)

	s1 := wave.State(w, 1)
	s2 := wave.State(w, 2)
	c := wave.Computed2(w, func(a, b int) (int, error) { return a + b, nil }, s1, s2)

	w.RunTick()
	v, err := wave.Read[int](w, c)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	require.NoError(t, w.Despawn(s1))
	require.NoError(t, wave.Send(w, s2, 20))
	w.RunTick()

	_, err = wave.Read[int](w, c)
	require.ErrorIs(t, err, wave.ErrNoSuchNode)
}

func TestReadErrors(t *testing.T) {
	w := newTestWorld(t)

	s := wave.State(w, 1)
	_, err := wave.Read[string](w, s)
	require.ErrorIs(t, err, wave.ErrTypeMismatch)

	require.ErrorIs(t, wave.Send(w, s, "nope"), wave.ErrTypeMismatch)

	require.NoError(t, w.Despawn(s))
	_, err = wave.Read[int](w, s)
	require.ErrorIs(t, err, wave.ErrNoSuchNode)
	require.ErrorIs(t, wave.Send(w, s, 2), wave.ErrNoSuchNode)
	require.ErrorIs(t, w.Trigger(s), wave.ErrNoSuchNode)
}

// creating a cell of an unregistered type is a setup defect
func TestUnregisteredTypePanics(t *testing.T) {
	w := wave.NewWorld(nil)
	assert.Panics(t, func() {
		wave.State(w, 3.14)
	})

	wave.RegisterType[float64](w)
	assert.NotPanics(t, func() {
		wave.State(w, 3.14)
	})
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "reap_tasks", wave.PhaseReapTasks.String())
	assert.Equal(t, "init_subscribers", wave.PhaseInitSubscribers.String())
	assert.Equal(t, "send_signals", wave.PhaseSendSignals.String())
	assert.Equal(t, "calculate_memos", wave.PhaseCalculateMemos.String())
	assert.Equal(t, "apply_deferred_effects", wave.PhaseApplyEffects.String())
	assert.Equal(t, "unknown", wave.Phase(99).String())
}

func TestTickErrorFormatting(t *testing.T) {
	inner := errors.New("kaboom")
	te := wave.TickError{Phase: wave.PhaseApplyEffects, Err: inner}
	assert.Contains(t, te.Error(), "apply_deferred_effects")
	assert.ErrorIs(t, te, inner)
}
