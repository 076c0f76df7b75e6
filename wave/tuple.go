package wave

import "fmt"

// Tuple is a positional snapshot of a node's source values, built just
// before its derivation or effect body runs. Position i holds the
// value of source i; a source that currently has no usable value (a
// failure value, or a computed that never produced) materializes as an
// absent field instead of failing the whole snapshot.
type Tuple struct {
	fields []tupleField
}

type tupleField struct {
	val any
	ok  bool
}

func (t Tuple) Len() int {
	return len(t.fields)
}

// Present reports whether position i holds a value.
func (t Tuple) Present(i int) bool {
	return i >= 0 && i < len(t.fields) && t.fields[i].ok
}

// Raw returns position i untyped.
func (t Tuple) Raw(i int) (any, bool) {
	if !t.Present(i) {
		return nil, false
	}
	return t.fields[i].val, true
}

// Field returns position i as T. The calling convention requires the
// declared type to match the source's stored type by construction; a
// mismatch reads as absent.
func Field[T any](t Tuple, i int) (T, bool) {
	var zero T
	if !t.Present(i) {
		return zero, false
	}
	v, ok := t.fields[i].val.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// materialize builds the snapshot for caller, reading every source
// through the subscribing path so the caller rejoins each source's
// notification set for the next tick. A source handle that no longer
// resolves (or resolves to a node without a cell) fails the snapshot;
// the caller surfaces that as a read-failure value.
func (w *World) materialize(caller Handle, sources []Handle) (Tuple, error) {
	fields := make([]tupleField, len(sources))
	for i, src := range sources {
		sn, err := w.node(src)
		if err != nil {
			return Tuple{}, fmt.Errorf("source %d: %w", i, err)
		}
		if sn.cell == nil {
			return Tuple{}, fmt.Errorf("source %d: %w: %v is not a cell", i, ErrTypeMismatch, src)
		}
		v, verr := sn.cell.valueAny(caller)
		w.ctx.touched.Add(src)
		if verr == nil {
			fields[i] = tupleField{val: v, ok: true}
		}
	}
	return Tuple{fields: fields}, nil
}
