// Package wave is a lazy, glitch-free reactive propagation engine.
//
// State lives in typed cells addressed by opaque handles. Writes are
// staged, never applied in place, and a fixed five-phase tick pipeline
// (reap tasks, init subscribers, send signals, calculate memos, apply
// deferred effects) folds them into the graph once per host tick. A
// node is recomputed or run at most once per tick no matter how many
// of its sources fire.
package wave

import "fmt"

// Handle is a stable identifier for a node in the store. The zero
// Handle never refers to a live node.
type Handle struct {
	idx uint32
	gen uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("%dv%d", h.idx, h.gen)
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

type slot struct {
	gen  uint32
	node *node
}

// World owns the node store, the type registry and the per-tick
// bookkeeping. It is single-writer: only the goroutine driving the
// tick pipeline may touch it. Task bodies hand mutations back as a
// Batch instead of reaching in.
type World struct {
	slots []slot
	free  []uint32

	types map[TypeKey]string

	ctx       *TickContext
	sendQueue []Handle
	rebuilds  []Handle

	onError OnErrorFunc
}

// NewWorld creates an empty store. onError may be nil; when set it is
// called for every failure recorded into the tick error set.
func NewWorld(onError OnErrorFunc) *World {
	return &World{
		types:   map[TypeKey]string{},
		ctx:     newTickContext(),
		onError: onError,
	}
}

// Context exposes the tick bookkeeping, mostly for hosts and tests.
// The sets are reset at the start of every tick except Running.
func (w *World) Context() *TickContext {
	return w.ctx
}

// spawn allocates an empty slot. Generations start at 1 so the zero
// Handle stays invalid.
func (w *World) spawn() Handle {
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		return Handle{idx: idx, gen: w.slots[idx].gen}
	}
	w.slots = append(w.slots, slot{gen: 1})
	return Handle{idx: uint32(len(w.slots) - 1), gen: 1}
}

func (w *World) attach(h Handle, n *node) {
	w.slots[h.idx].node = n
	n.rebuild = true
	w.rebuilds = append(w.rebuilds, h)
}

func (w *World) node(h Handle) (*node, error) {
	if int(h.idx) >= len(w.slots) {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchNode, h)
	}
	s := &w.slots[h.idx]
	if s.node == nil || s.gen != h.gen {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchNode, h)
	}
	return s.node, nil
}

// Despawn destroys a node, removing it from the subscriber set of
// every source and trigger it declared. Other nodes that still list h
// as a source will observe a read failure from then on.
func (w *World) Despawn(h Handle) error {
	n, err := w.node(h)
	if err != nil {
		return err
	}
	for _, src := range n.sources {
		if sn, err := w.node(src); err == nil && sn.cell != nil {
			sn.cell.unsubscribe(h)
		}
	}
	for _, trg := range n.triggers {
		if tn, err := w.node(trg); err == nil && tn.cell != nil {
			tn.cell.unsubscribe(h)
		}
	}
	w.ctx.forget(h)
	w.slots[h.idx].node = nil
	w.slots[h.idx].gen++
	w.free = append(w.free, h.idx)
	return nil
}

func (w *World) recordError(phase Phase, h Handle, err error) {
	w.ctx.Errors = append(w.ctx.Errors, TickError{Node: h, Phase: phase, Err: err})
	if w.onError != nil {
		w.onError(h, err)
	}
}
