package wave_test

import (
	"testing"

	"github.com/delaneyj/tickwave/wave"
	"github.com/stretchr/testify/assert"
)

type playerScore struct {
	Name  string
	Score int
}

func TestRegistryKeysAreStablePerType(t *testing.T) {
	w := wave.NewWorld(nil)

	intKey := wave.RegisterType[int](w)
	strKey := wave.RegisterType[string](w)
	structKey := wave.RegisterType[playerScore](w)

	assert.NotEqual(t, intKey, strKey)
	assert.NotEqual(t, intKey, structKey)
	assert.Equal(t, intKey, wave.RegisterType[int](w))

	assert.True(t, w.Registered(intKey))
	assert.False(t, w.Registered(wave.TypeKey(0)))

	name, ok := w.TypeName(structKey)
	assert.True(t, ok)
	assert.Equal(t, "wave_test.playerScore", name)
}

// registered aggregate types flow through cells like any scalar,
// with their own == deciding what counts as a change
func TestStructValuedSignal(t *testing.T) {
	w := wave.NewWorld(nil)
	wave.RegisterType[playerScore](w)
	wave.RegisterType[string](w)

	s := wave.State(w, playerScore{Name: "ada", Score: 1})
	derives := 0
	c := wave.Computed1(w, func(p playerScore) (string, error) {
		derives++
		return p.Name, nil
	}, s)

	w.RunTick()
	assert.Equal(t, 1, derives)

	// equal struct value: no change under ==
	_ = wave.Send(w, s, playerScore{Name: "ada", Score: 1})
	w.RunTick()
	assert.Equal(t, 1, derives)

	_ = wave.Send(w, s, playerScore{Name: "grace", Score: 2})
	w.RunTick()
	assert.Equal(t, 2, derives)
	v, err := wave.Read[string](w, c)
	assert.NoError(t, err)
	assert.Equal(t, "grace", v)
}
