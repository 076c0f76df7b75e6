package wave

import "fmt"

type nodeKind uint8

const (
	kindSignal nodeKind = iota
	kindComputed
	kindEffect
	kindTask
)

func (k nodeKind) String() string {
	switch k {
	case kindSignal:
		return "signal"
	case kindComputed:
		return "computed"
	case kindEffect:
		return "effect"
	case kindTask:
		return "task"
	default:
		return "unknown"
	}
}

// EffectFunc is a synchronous side-effect body. It runs inline on the
// pipeline goroutine with full access to the World and must return
// promptly.
type EffectFunc func(args Tuple, w *World) error

// TaskFunc is an asynchronous effect body. It runs on its own
// goroutine, must not touch the World, and hands mutations back as a
// Batch reaped by a later tick.
type TaskFunc func(args Tuple) (Batch, error)

type taskResult struct {
	batch Batch
	err   error
}

// node is one graph entry. Graph relationships are held as handle
// lists, never embedded references, so the topology stays uniform
// while the stored value types vary per node.
type node struct {
	kind nodeKind
	cell observable

	derive func(args Tuple) (any, error)
	effect EffectFunc
	task   TaskFunc

	sources  []Handle
	triggers []Handle

	rebuild    bool
	staged     bool
	trigStaged bool

	done chan taskResult
}

// State allocates a Signal node holding initial. T must have been
// registered with RegisterType; an unregistered type panics, as it is
// a setup defect rather than a runtime condition.
func State[T comparable](w *World, initial T) Handle {
	key := mustRegistered[T](w)
	h := w.spawn()
	w.attach(h, &node{
		kind: kindSignal,
		cell: newCell(initial, key),
	})
	return h
}

// ComputedFn allocates a Computed node whose derivation reads the raw
// positional Tuple. Most callers want the generated ComputedN
// wrappers instead. Returning ErrSkip leaves the value untouched; any
// other error is stored and propagated as a failure value.
func ComputedFn[R comparable](w *World, derive func(args Tuple) (R, error), sources ...Handle) Handle {
	key := mustRegistered[R](w)
	var zero R
	h := w.spawn()
	w.attach(h, &node{
		kind: kindComputed,
		cell: newCell(zero, key),
		derive: func(args Tuple) (any, error) {
			return derive(args)
		},
		sources: sources,
	})
	return h
}

// EffectFn allocates a synchronous Effect node. It runs when a source
// changed or a trigger fired this tick, at most once per tick.
func EffectFn(w *World, effect EffectFunc, sources []Handle, triggers []Handle) Handle {
	h := w.spawn()
	w.attach(h, &node{
		kind:     kindEffect,
		effect:   effect,
		sources:  sources,
		triggers: triggers,
	})
	return h
}

// TaskFn allocates an asynchronous Effect node. At most one execution
// is in flight at a time; re-triggers while running are coalesced, and
// a restart reads live state rather than a stale snapshot.
func TaskFn(w *World, task TaskFunc, sources []Handle, triggers []Handle) Handle {
	h := w.spawn()
	w.attach(h, &node{
		kind:     kindTask,
		task:     task,
		sources:  sources,
		triggers: triggers,
	})
	return h
}

func (w *World) queueSend(h Handle, n *node) {
	if !n.staged && !n.trigStaged {
		w.sendQueue = append(w.sendQueue, h)
	}
}

// Send stages a value write on a Signal for the next send_signals
// phase. The last value staged before the phase runs wins.
func Send[T comparable](w *World, h Handle, value T) error {
	n, err := w.node(h)
	if err != nil {
		return err
	}
	if n.cell == nil {
		return fmt.Errorf("%w: %v is not a cell", ErrTypeMismatch, h)
	}
	w.queueSend(h, n)
	if err := n.cell.stageAny(value); err != nil {
		return err
	}
	n.staged = true
	return nil
}

// Trigger stages a value-free trigger: dependents are notified on the
// next tick even though the stored value does not change.
func (w *World) Trigger(h Handle) error {
	n, err := w.node(h)
	if err != nil {
		return err
	}
	if n.cell == nil {
		return fmt.Errorf("%w: %v is not a cell", ErrTypeMismatch, h)
	}
	w.queueSend(h, n)
	n.trigStaged = true
	return nil
}

// TriggerValue stages a value-bearing trigger: the value is merged and
// dependents are notified even when it equals the current one.
func TriggerValue[T comparable](w *World, h Handle, value T) error {
	n, err := w.node(h)
	if err != nil {
		return err
	}
	if n.cell == nil {
		return fmt.Errorf("%w: %v is not a cell", ErrTypeMismatch, h)
	}
	w.queueSend(h, n)
	if err := n.cell.stageAny(value); err != nil {
		return err
	}
	n.staged = true
	n.trigStaged = true
	return nil
}

// Read returns the committed value without any subscription side
// effect. A stored failure value comes back as the error.
func Read[T comparable](w *World, h Handle) (T, error) {
	var zero T
	n, err := w.node(h)
	if err != nil {
		return zero, err
	}
	c, ok := n.cell.(*cell[T])
	if !ok {
		return zero, fmt.Errorf("%w: %v does not hold %s", ErrTypeMismatch, h, typeNameOf[T]())
	}
	if c.err != nil {
		return zero, c.err
	}
	return c.data, nil
}

// Value reads like Read but also stages caller into the cell's
// subscriber set. The subscription only takes effect from the
// following tick onward.
func Value[T comparable](w *World, h Handle, caller Handle) (T, error) {
	var zero T
	n, err := w.node(h)
	if err != nil {
		return zero, err
	}
	c, ok := n.cell.(*cell[T])
	if !ok {
		return zero, fmt.Errorf("%w: %v does not hold %s", ErrTypeMismatch, h, typeNameOf[T]())
	}
	c.subscribe(caller)
	w.ctx.touched.Add(h)
	if c.err != nil {
		return zero, c.err
	}
	return c.data, nil
}
