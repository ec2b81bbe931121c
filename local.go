package stackctx

import "sync"

// Local is a registry of lazily constructed, per-owner Contexts: the
// registered-singleton usage mode. An owner is any comparable key that
// identifies one logical thread of execution (a worker id, request id,
// goroutine-scoped token). The registry is safe for concurrent use, but
// each Context it hands out is still confined to its owner: only the
// owner may push, peek, or pop it.
type Local[T any] struct {
	blockCapacity int
	fin           func(*T)
	contexts      sync.Map // owner key -> *Context[T]
}

// NewLocal creates a registry whose Contexts are built with the given
// block capacity. Panics if blockCapacity is not positive.
func NewLocal[T any](blockCapacity int) *Local[T] {
	if blockCapacity <= 0 {
		panic("stackctx: block capacity must be positive")
	}
	return &Local[T]{blockCapacity: blockCapacity}
}

// NewLocalWithFinalizer is NewLocal with a finalizer applied to every
// Context the registry constructs.
func NewLocalWithFinalizer[T any](blockCapacity int, fin func(*T)) *Local[T] {
	l := NewLocal[T](blockCapacity)
	l.fin = fin
	return l
}

// Get returns the owner's Context, constructing it on first use. At most
// one Context ever exists per owner key.
func (l *Local[T]) Get(owner any) *Context[T] {
	if c, ok := l.contexts.Load(owner); ok {
		return c.(*Context[T])
	}
	fresh := NewWithFinalizer[T](l.blockCapacity, l.fin)
	actual, _ := l.contexts.LoadOrStore(owner, fresh)
	return actual.(*Context[T])
}

// Drop closes the owner's Context, finalizing its live values, and
// removes it from the registry. Unknown owners are ignored.
func (l *Local[T]) Drop(owner any) {
	c, ok := l.contexts.LoadAndDelete(owner)
	if !ok {
		return
	}
	c.(*Context[T]).Close()
}

// Len returns the number of live per-owner Contexts.
func (l *Local[T]) Len() int {
	n := 0
	l.contexts.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
