package wave

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// TickContext is the phase-to-phase scratch state, passed through the
// pipeline rather than hidden in a singleton. Everything is reset at
// the start of each tick except Running, which lives as long as its
// task executions, and touched, which holds subscriber commits still
// pending.
type TickContext struct {
	// Changed holds the cells whose committed value actually differed
	// after merge this tick.
	Changed mapset.Set[Handle]

	// Dirty holds the consumers reachable from Changed, candidates for
	// the recompute wave.
	Dirty mapset.Set[Handle]

	// Triggered holds the nodes explicitly triggered this tick,
	// regardless of value change.
	Triggered mapset.Set[Handle]

	// Deferred holds the effects found eligible this tick.
	Deferred mapset.Set[Handle]

	// Running holds the tasks with an execution in flight. It survives
	// tick resets and is only cleared per node when a result is reaped.
	Running mapset.Set[Handle]

	// Errors accumulates this tick's failures.
	Errors []TickError

	processed mapset.Set[Handle]
	touched   mapset.Set[Handle]
}

func newTickContext() *TickContext {
	return &TickContext{
		Changed:   mapset.NewSet[Handle](),
		Dirty:     mapset.NewSet[Handle](),
		Triggered: mapset.NewSet[Handle](),
		Deferred:  mapset.NewSet[Handle](),
		Running:   mapset.NewSet[Handle](),
		processed: mapset.NewSet[Handle](),
		touched:   mapset.NewSet[Handle](),
	}
}

func (c *TickContext) reset() {
	c.Changed.Clear()
	c.Dirty.Clear()
	c.Triggered.Clear()
	c.Deferred.Clear()
	c.Errors = c.Errors[:0]
	c.processed.Clear()
}

func (c *TickContext) forget(h Handle) {
	c.Changed.Remove(h)
	c.Dirty.Remove(h)
	c.Triggered.Remove(h)
	c.Deferred.Remove(h)
	c.Running.Remove(h)
	c.processed.Remove(h)
	c.touched.Remove(h)
}

// RunTick runs the five phases once, in their fixed order. Hosts that
// need finer scheduling may call the phase methods individually, in
// this order, and may run extra ticks mid-frame for flush-now
// semantics.
func (w *World) RunTick() {
	w.ctx.reset()
	w.ReapTasks()
	w.InitSubscribers()
	w.SendSignals()
	w.CalculateMemos()
	w.ApplyDeferredEffects()
}

// ReapTasks polls every task with an execution in flight. A completed
// execution has its batch applied (staged writes picked up by this
// tick's send_signals phase) and its running mark cleared.
func (w *World) ReapTasks() {
	for _, h := range w.ctx.Running.ToSlice() {
		n, err := w.node(h)
		if err != nil {
			w.ctx.Running.Remove(h)
			continue
		}
		select {
		case res := <-n.done:
			n.done = nil
			w.ctx.Running.Remove(h)
			if res.err != nil && !errors.Is(res.err, ErrSkip) {
				w.recordError(PhaseReapTasks, h, fmt.Errorf("task failed: %w", res.err))
			}
			w.Apply(res.batch)
		default:
		}
	}
}

// InitSubscribers subscribes every node created (or marked rebuild)
// since the last tick to each of its declared sources and triggers, so
// it is guaranteed to receive the next change before it ever performs
// an explicit read. New computeds are seeded into the wave for their
// initial evaluation.
func (w *World) InitSubscribers() {
	rebuilds := w.rebuilds
	w.rebuilds = nil
	for _, h := range rebuilds {
		n, err := w.node(h)
		if err != nil || !n.rebuild {
			continue
		}
		n.rebuild = false
		for _, src := range append(append([]Handle{}, n.sources...), n.triggers...) {
			sn, serr := w.node(src)
			if serr != nil {
				w.recordError(PhaseInitSubscribers, h, fmt.Errorf("source %v: %w", src, serr))
				continue
			}
			if sn.cell == nil {
				continue
			}
			sn.cell.subscribe(h)
			sn.cell.mergeSubscribers()
		}
		if n.kind == kindComputed {
			w.ctx.Dirty.Add(h)
		}
	}
}

// SendSignals merges every staged external write. Cells that actually
// changed join Changed and hand their captured subscribers to the wave
// seed; explicit triggers join Triggered and notify their subscribers
// even without a material change.
func (w *World) SendSignals() {
	queue := w.sendQueue
	w.sendQueue = nil
	for _, h := range queue {
		n, err := w.node(h)
		if err != nil {
			continue
		}
		staged, triggered := n.staged, n.trigStaged
		n.staged, n.trigStaged = false, false
		if n.cell == nil || (!staged && !triggered) {
			continue
		}
		subs, changed := n.cell.merge()
		if changed {
			w.ctx.Changed.Add(h)
			w.ctx.Dirty.Append(subs...)
		}
		if triggered {
			w.ctx.Triggered.Add(h)
			w.ctx.Dirty.Append(n.cell.getSubscribers()...)
			w.ctx.Dirty.Append(subs...)
		}
	}
}

// CalculateMemos runs the propagation wave. Each pass evaluates the
// computed nodes notified by the previous one; a node that commits a
// new (or failure) value joins Changed and hands its captured
// subscribers to the next wave. The processed set caps every node at
// one evaluation per tick no matter how many waves reach it. The wave
// may visit a node more than once, but never acts on it twice.
func (w *World) CalculateMemos() {
	work := w.ctx.Dirty.Clone()
	for work.Cardinality() > 0 {
		next := mapset.NewSet[Handle]()
		for _, h := range work.ToSlice() {
			n, err := w.node(h)
			if err != nil || n.kind != kindComputed || w.ctx.processed.Contains(h) {
				continue
			}
			w.ctx.processed.Add(h)

			args, rerr := w.materialize(h, n.sources)
			if rerr != nil {
				// A vanished source is a non-fatal read failure,
				// surfaced to consumers as a failure value.
				w.recordError(PhaseCalculateMemos, h, rerr)
				n.cell.stageErr(rerr)
				subs, _ := n.cell.merge()
				w.ctx.Changed.Add(h)
				next.Append(subs...)
				continue
			}

			var out any
			derr := guard(func() error {
				v, err := n.derive(args)
				out = v
				return err
			})
			if errors.Is(derr, ErrSkip) {
				continue
			}
			if derr != nil {
				w.recordError(PhaseCalculateMemos, h, fmt.Errorf("derivation failed: %w", derr))
				n.cell.stageErr(derr)
				subs, _ := n.cell.merge()
				w.ctx.Changed.Add(h)
				next.Append(subs...)
				continue
			}
			if err := n.cell.stageAny(out); err != nil {
				w.recordError(PhaseCalculateMemos, h, err)
				continue
			}
			subs, changed := n.cell.merge()
			if changed {
				w.ctx.Changed.Add(h)
				next.Append(subs...)
			}
		}
		work = next
	}
	w.commitTouched()
}

// ApplyDeferredEffects runs every effect whose trigger list intersects
// Triggered or whose source list intersects Changed, at most once per
// tick. Synchronous effects run inline with World access; tasks spawn
// a goroutine unless one is already in flight, in which case the
// trigger is coalesced.
func (w *World) ApplyDeferredEffects() {
	for idx := range w.slots {
		n := w.slots[idx].node
		if n == nil || (n.kind != kindEffect && n.kind != kindTask) {
			continue
		}
		h := Handle{idx: uint32(idx), gen: w.slots[idx].gen}
		if !anyIn(n.triggers, w.ctx.Triggered) && !anyIn(n.sources, w.ctx.Changed) {
			continue
		}
		w.ctx.Deferred.Add(h)
		if n.kind == kindTask && w.ctx.Running.Contains(h) {
			continue
		}

		args, rerr := w.materialize(h, n.sources)
		if rerr != nil {
			w.recordError(PhaseApplyEffects, h, rerr)
			continue
		}

		switch n.kind {
		case kindEffect:
			err := guard(func() error {
				return n.effect(args, w)
			})
			if err != nil && !errors.Is(err, ErrSkip) {
				w.recordError(PhaseApplyEffects, h, fmt.Errorf("effect failed: %w", err))
			}
		case kindTask:
			done := make(chan taskResult, 1)
			n.done = done
			w.ctx.Running.Add(h)
			task := n.task
			go func() {
				var res taskResult
				res.err = guard(func() error {
					b, err := task(args)
					res.batch = b
					return err
				})
				done <- res
			}()
		}
	}
	w.commitTouched()
}

// commitTouched folds staged subscribers into the live set for every
// cell read since the last commit. Running it only at phase
// boundaries is what keeps a mid-tick subscription from receiving a
// notification already computed this tick.
func (w *World) commitTouched() {
	for _, h := range w.ctx.touched.ToSlice() {
		if n, err := w.node(h); err == nil && n.cell != nil {
			n.cell.mergeSubscribers()
		}
	}
	w.ctx.touched.Clear()
}

func anyIn(hs []Handle, s mapset.Set[Handle]) bool {
	for _, h := range hs {
		if s.Contains(h) {
			return true
		}
	}
	return false
}
