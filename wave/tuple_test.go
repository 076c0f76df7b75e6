package wave_test

import (
	"testing"

	"github.com/delaneyj/tickwave/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raw derivations see one field per source, in declaration order, with
// absent markers instead of hard failures
func TestTuplePositionalAccess(t *testing.T) {
	w := newTestWorld(t)

	s0 := wave.State(w, 42)
	s1 := wave.State(w, "hello")
	s2 := wave.State(w, true)

	var got wave.Tuple
	wave.EffectFn(w, func(args wave.Tuple, _ *wave.World) error {
		got = args
		return nil
	}, []wave.Handle{s0, s1, s2}, nil)

	w.RunTick()
	require.NoError(t, wave.Send(w, s0, 43))
	w.RunTick()

	require.Equal(t, 3, got.Len())

	i, ok := wave.Field[int](got, 0)
	require.True(t, ok)
	assert.Equal(t, 43, i)

	s, ok := wave.Field[string](got, 1)
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	b, ok := wave.Field[bool](got, 2)
	require.True(t, ok)
	assert.True(t, b)

	// declared type must match the source's stored type
	_, ok = wave.Field[string](got, 0)
	assert.False(t, ok)

	// out of range reads as absent
	_, ok = wave.Field[int](got, 7)
	assert.False(t, ok)
	assert.False(t, got.Present(7))

	raw, ok := got.Raw(0)
	require.True(t, ok)
	assert.Equal(t, 43, raw)
}

// an arity wrapper skips its body while any positional source is absent
func TestArityWrapperSkipsOnAbsentSource(t *testing.T) {
	w := newTestWorld(t)

	s := wave.State(w, 1)
	failing := wave.Computed1(w, func(v int) (int, error) {
		return 0, assert.AnError
	}, s)

	runs := 0
	wave.Effect1(w, func(_ int, _ *wave.World) error {
		runs++
		return nil
	}, failing)

	w.RunTick()
	// failing holds an error value, so the typed effect never ran
	assert.Equal(t, 0, runs)
	_, err := wave.Read[int](w, failing)
	require.Error(t, err)
}
