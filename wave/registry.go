package wave

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// TypeKey identifies a registered cell value type. Keys are xxhash
// sums of the reflected type name, recorded per node at creation time.
type TypeKey uint64

func (k TypeKey) String() string {
	return fmt.Sprintf("type(%016x)", uint64(k))
}

func typeNameOf[T comparable]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func typeKeyOf[T comparable]() TypeKey {
	return TypeKey(xxhash.Sum64String(typeNameOf[T]()))
}

// RegisterType makes T usable as a cell value type in w. Every value
// type must be registered before the first cell of that type is
// created; there is no automatic registration.
func RegisterType[T comparable](w *World) TypeKey {
	key := typeKeyOf[T]()
	w.types[key] = typeNameOf[T]()
	return key
}

// Registered reports whether a type key has been registered.
func (w *World) Registered(key TypeKey) bool {
	_, ok := w.types[key]
	return ok
}

// TypeName returns the registered name for a key, if any.
func (w *World) TypeName(key TypeKey) (string, bool) {
	name, ok := w.types[key]
	return name, ok
}

// mustRegistered panics when T was never registered. An unregistered
// type is a configuration defect, fatal at setup time rather than a
// per-tick condition.
func mustRegistered[T comparable](w *World) TypeKey {
	key := typeKeyOf[T]()
	if _, ok := w.types[key]; !ok {
		panic(fmt.Sprintf("wave: type %s not registered, call RegisterType[%s] first",
			typeNameOf[T](), typeNameOf[T]()))
	}
	return key
}
