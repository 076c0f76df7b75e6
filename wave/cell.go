package wave

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// observable is the capability surface the tick pipeline needs from a
// cell regardless of its concrete value type. Each node stores one at
// creation time, so the generic phase code never branches per type.
type observable interface {
	typeKey() TypeKey

	getSubscribers() []Handle
	merge() (subs []Handle, changed bool)
	mergeSubscribers()
	subscribe(caller Handle)
	unsubscribe(caller Handle)

	readAny() (any, error)
	valueAny(caller Handle) (any, error)
	stageAny(next any) error
	stageErr(err error)
}

// cell is the typed storage unit: a committed value, an optional
// pending value, and a double-buffered subscriber set. Subscribers
// staged into nextSubs are only folded into subs by an explicit
// mergeSubscribers call, never read by notification logic, so a
// subscription created mid-tick cannot retroactively receive a
// notification already computed this tick.
type cell[T comparable] struct {
	data T
	err  error

	next    *T
	nextErr error

	subs     mapset.Set[Handle]
	nextSubs mapset.Set[Handle]

	key TypeKey
}

func newCell[T comparable](initial T, key TypeKey) *cell[T] {
	return &cell[T]{
		data:     initial,
		subs:     mapset.NewSet[Handle](),
		nextSubs: mapset.NewSet[Handle](),
		key:      key,
	}
}

func (c *cell[T]) typeKey() TypeKey {
	return c.key
}

func (c *cell[T]) getSubscribers() []Handle {
	return c.subs.ToSlice()
}

// merge commits the pending value if it differs from the committed one
// under ==. On a real change it returns the live subscriber set and
// clears it; each consumer rejoins by reading. An unchanged pending
// value is dropped, which is what halts a glitch wave.
func (c *cell[T]) merge() ([]Handle, bool) {
	if c.nextErr != nil {
		c.err = c.nextErr
		c.nextErr = nil
		c.next = nil
		return c.takeSubscribers(), true
	}
	next := c.next
	c.next = nil
	if next == nil {
		return nil, false
	}
	if *next == c.data && c.err == nil {
		return nil, false
	}
	c.data = *next
	c.err = nil
	return c.takeSubscribers(), true
}

func (c *cell[T]) takeSubscribers() []Handle {
	subs := c.subs.ToSlice()
	c.subs.Clear()
	return subs
}

func (c *cell[T]) mergeSubscribers() {
	c.subs.Append(c.nextSubs.ToSlice()...)
	c.nextSubs.Clear()
}

func (c *cell[T]) subscribe(caller Handle) {
	c.nextSubs.Add(caller)
}

func (c *cell[T]) unsubscribe(caller Handle) {
	c.subs.Remove(caller)
	c.nextSubs.Remove(caller)
}

func (c *cell[T]) readAny() (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.data, nil
}

// valueAny is the read-with-subscription path, the only way a consumer
// joins the notification set.
func (c *cell[T]) valueAny(caller Handle) (any, error) {
	c.subscribe(caller)
	return c.readAny()
}

func (c *cell[T]) stageAny(next any) error {
	v, ok := next.(T)
	if !ok {
		return fmt.Errorf("%w: cannot stage %T into cell of %v", ErrTypeMismatch, next, c.key)
	}
	c.next = &v
	c.nextErr = nil
	return nil
}

// stageErr stages a failure value. It is committed and propagated like
// any other value so downstream consumers can branch on it.
func (c *cell[T]) stageErr(err error) {
	c.nextErr = err
	c.next = nil
}
