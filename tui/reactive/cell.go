// Package reactive provides a typed observable value slot. State that other
// components need to react to (the session, a selection index) lives in a
// Cell; dependents subscribe once and are notified on every value change.
package reactive

// Observer receives the previous and the new value after a change.
type Observer[T comparable] func(old, new T)

// Cell holds a value and notifies observers when it changes. Not safe for
// concurrent use: all sets and reads happen on the event-loop goroutine.
type Cell[T comparable] struct {
	value     T
	observers []Observer[T]
	notifying bool
}

// New creates a cell holding initial. No observers fire for the initial value.
func New[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value without side effects.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores v and synchronously invokes every observer in registration
// order with (old, v). Setting the current value is a no-op. A set issued
// from inside an observer is dropped: reentrant writes have no well-defined
// ordering, so they are guarded rather than recursed into.
//
// Reports whether the value changed.
func (c *Cell[T]) Set(v T) bool {
	if c.notifying {
		return false
	}
	if v == c.value {
		return false
	}
	old := c.value
	c.value = v
	c.notifying = true
	defer func() { c.notifying = false }()
	for _, fn := range c.observers {
		fn(old, v)
	}
	return true
}

// OnChange registers an observer. Multiple observers are allowed and fire
// in registration order.
func (c *Cell[T]) OnChange(fn Observer[T]) {
	c.observers = append(c.observers, fn)
}
