package wave

import "fmt"

// Batch is an ordered list of staged writes produced away from the
// store, typically by a task body. The pipeline applies it
// single-writer when the task is reaped, so background work never
// mutates shared state directly.
type Batch struct {
	ops []batchOp
}

type batchOp struct {
	h       Handle
	value   any
	send    bool
	trigger bool
}

// Send stages a value write on h.
func (b *Batch) Send(h Handle, value any) {
	b.ops = append(b.ops, batchOp{h: h, value: value, send: true})
}

// Trigger stages a value-free trigger on h.
func (b *Batch) Trigger(h Handle) {
	b.ops = append(b.ops, batchOp{h: h, trigger: true})
}

// TriggerValue stages a value-bearing trigger on h.
func (b *Batch) TriggerValue(h Handle, value any) {
	b.ops = append(b.ops, batchOp{h: h, value: value, send: true, trigger: true})
}

func (b *Batch) Len() int {
	return len(b.ops)
}

// Apply stages every op in the batch. It runs on the pipeline
// goroutine; failures (dead handles, mismatched types) are recorded
// into the tick error set rather than aborting the batch.
func (w *World) Apply(b Batch) {
	for _, op := range b.ops {
		n, err := w.node(op.h)
		if err != nil {
			w.recordError(PhaseReapTasks, op.h, err)
			continue
		}
		if n.cell == nil {
			w.recordError(PhaseReapTasks, op.h, fmt.Errorf("%w: %v is not a cell", ErrTypeMismatch, op.h))
			continue
		}
		w.queueSend(op.h, n)
		if op.send {
			if err := n.cell.stageAny(op.value); err != nil {
				w.recordError(PhaseReapTasks, op.h, err)
				continue
			}
			n.staged = true
		}
		if op.trigger {
			n.trigStaged = true
		}
	}
}
