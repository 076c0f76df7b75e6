package wave

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchNode means a handle did not resolve to a live node.
	ErrNoSuchNode = errors.New("no such node")

	// ErrTypeMismatch means the stored value type differs from the
	// requested one.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSkip may be returned by a derivation to leave the computed
	// value untouched and stop propagation, or by an effect body to
	// decline running without recording a failure.
	ErrSkip = errors.New("skip update")
)

// Phase identifies one of the five pipeline phases, in tick order.
type Phase uint8

const (
	PhaseReapTasks Phase = iota
	PhaseInitSubscribers
	PhaseSendSignals
	PhaseCalculateMemos
	PhaseApplyEffects
)

func (p Phase) String() string {
	switch p {
	case PhaseReapTasks:
		return "reap_tasks"
	case PhaseInitSubscribers:
		return "init_subscribers"
	case PhaseSendSignals:
		return "send_signals"
	case PhaseCalculateMemos:
		return "calculate_memos"
	case PhaseApplyEffects:
		return "apply_deferred_effects"
	default:
		return "unknown"
	}
}

// TickError is one failure accumulated during a tick. Failures never
// abort the pipeline; they pile up here and in the OnErrorFunc.
type TickError struct {
	Node  Handle
	Phase Phase
	Err   error
}

func (e TickError) Error() string {
	return fmt.Sprintf("%s: node %v: %v", e.Phase, e.Node, e.Err)
}

func (e TickError) Unwrap() error {
	return e.Err
}

// OnErrorFunc receives every failure recorded into the tick error set.
type OnErrorFunc func(node Handle, err error)

// guard runs fn, converting a panic into an error so one misbehaving
// closure cannot abort the tick.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
