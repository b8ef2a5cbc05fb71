package flow

import (
	"github.com/ib-77/tri3/pkg/tri"
)

// Chain wraps a tri.Lane to enable fluent, synchronous composition of
// pushes and pipeline edits on one element type.
type Chain[T, T1, T2, T3 any] struct {
	lane tri.Lane[T, T1, T2, T3]
}

// On creates a chain over a lane.
func On[T, T1, T2, T3 any](lane tri.Lane[T, T1, T2, T3]) Chain[T, T1, T2, T3] {
	return Chain[T, T1, T2, T3]{lane: lane}
}

// Lane returns the underlying lane.
func (c Chain[T, T1, T2, T3]) Lane() tri.Lane[T, T1, T2, T3] {
	return c.lane
}

// Push appends values to the list in argument order.
func (c Chain[T, T1, T2, T3]) Push(vs ...T) Chain[T, T1, T2, T3] {
	for _, v := range vs {
		c.lane.Push(v)
	}
	return c
}

// Modify registers modifiers on the lane's pipeline in argument order.
func (c Chain[T, T1, T2, T3]) Modify(ms ...tri.Modifier[T]) Chain[T, T1, T2, T3] {
	for _, m := range ms {
		c.lane.Modify(m)
	}
	return c
}

// Reset clears the lane's pipeline.
func (c Chain[T, T1, T2, T3]) Reset() Chain[T, T1, T2, T3] {
	c.lane.Reset()
	return c
}

// Each runs a side effect for every transformed element, in order, without
// changing the result.
func (c Chain[T, T1, T2, T3]) Each(fn func(T)) Chain[T, T1, T2, T3] {
	for v := range c.lane.Values() {
		fn(v)
	}
	return c
}

// Count returns the number of elements of the lane's type.
func (c Chain[T, T1, T2, T3]) Count() int {
	n := 0
	for range c.lane.Values() {
		n++
	}
	return n
}

// First returns the earliest-inserted transformed element of the lane's
// type, or the zero value and false when the lane is empty.
func (c Chain[T, T1, T2, T3]) First() (T, bool) {
	for v := range c.lane.Values() {
		return v, true
	}
	var zero T
	return zero, false
}

// Collect collapses the chain to the lane's transformed elements.
func (c Chain[T, T1, T2, T3]) Collect() []T {
	return c.lane.Collect()
}
