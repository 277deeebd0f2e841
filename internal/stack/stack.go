// Package stack provides a small LIFO used by the tokenizer to track
// in-progress elements while scanning. It has no fixed capacity: Push
// always succeeds and the backing slice grows as needed. It mirrors the
// shrink-on-pop behavior of lestrrat-go/helium's internal/stack package,
// generalized with a type parameter instead of interface{} so the
// tokenizer's open-element stack can hold arena node indices directly,
// with no boxing.
package stack

// Stack is a LIFO of T, reused across pushes and pops without
// reallocating on every operation.
type Stack[T any] struct {
	items []T
}

// Push appends v to the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top n items (default 1), discarding them.
// Once the backing array has shrunk to less than half its capacity (and
// that capacity exceeds 20 entries) it is reallocated, so a long-lived
// Stack used across many repeated Parse calls on a reused Parser doesn't
// keep the high-water-mark allocation forever.
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	if nn <= 0 {
		return
	}

	for s.Len() > 0 && nn > 0 {
		s.items = s.items[:len(s.items)-1]
		nn--
	}

	if c := cap(s.items); c > 20 && c > s.Len()*2 {
		s.items = append(make([]T, 0, s.Len()), s.items...)
	}
}

// Peek returns the top item and true, or the zero value and false if
// the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Top returns a pointer to the top item for in-place mutation, or nil
// if the stack is empty. Unlike the interface{}-boxed stack this one
// replaces, a type parameter lets the caller update a field of the top
// frame (e.g. a running tail pointer) without a Pop/Push round trip.
func (s *Stack[T]) Top() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// Len reports the number of items currently on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Reset empties the stack without releasing its backing array, for
// reuse across Parse calls on the same Parser.
func (s *Stack[T]) Reset() {
	s.items = s.items[:0]
}
