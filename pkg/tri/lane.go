package tri

import (
	"iter"
	"slices"
)

// Lane is the typed handle for one of a list's three element types. Lanes
// are only obtainable from List.First, List.Second and List.Third, which
// pin T to T1, T2 or T3 respectively, so every type-parameterized operation
// is checked at compile time: a type outside the triple cannot be named at
// a call site. There is no reflection and no type assertion on either the
// write or the read path.
type Lane[T, T1, T2, T3 any] struct {
	list   *List[T1, T2, T3]
	pipe   *pipeline[T]
	wrap   func(T) Value[T1, T2, T3]
	unwrap func(Value[T1, T2, T3]) (T, bool)
}

// First returns the lane for T1-typed elements.
func (l *List[T1, T2, T3]) First() Lane[T1, T1, T2, T3] {
	return Lane[T1, T1, T2, T3]{
		list:   l,
		pipe:   &l.first,
		wrap:   NewFirst[T1, T2, T3],
		unwrap: Value[T1, T2, T3].First,
	}
}

// Second returns the lane for T2-typed elements.
func (l *List[T1, T2, T3]) Second() Lane[T2, T1, T2, T3] {
	return Lane[T2, T1, T2, T3]{
		list:   l,
		pipe:   &l.second,
		wrap:   NewSecond[T1, T2, T3],
		unwrap: Value[T1, T2, T3].Second,
	}
}

// Third returns the lane for T3-typed elements.
func (l *List[T1, T2, T3]) Third() Lane[T3, T1, T2, T3] {
	return Lane[T3, T1, T2, T3]{
		list:   l,
		pipe:   &l.third,
		wrap:   NewThird[T1, T2, T3],
		unwrap: Value[T1, T2, T3].Third,
	}
}

// Push appends v to the end of the list. Insertion order is shared across
// all three lanes.
func (ln Lane[T, T1, T2, T3]) Push(v T) {
	ln.list.cells = append(ln.list.cells, ln.wrap(v))
}

// Modify registers m at the end of this lane's pipeline. It affects every
// subsequent read of this lane's elements, including values pushed before
// the call, and never touches the other two lanes.
func (ln Lane[T, T1, T2, T3]) Modify(m Modifier[T]) {
	ln.pipe.push(m)
}

// Reset clears this lane's pipeline; subsequent reads observe the stored
// values unchanged. Other lanes are unaffected.
func (ln Lane[T, T1, T2, T3]) Reset() {
	ln.pipe.reset()
}

// Depth reports how many modifiers are currently registered on this lane.
func (ln Lane[T, T1, T2, T3]) Depth() int {
	return ln.pipe.depth()
}

// Values yields this lane's elements in their relative insertion order,
// each passed through the pipeline state current at the moment it is
// pulled, so a Modify or Reset between pulls is observed by the remaining
// elements. The sequence is finite and restartable; pushing to the list
// mid-walk invalidates the remainder of that walk.
func (ln Lane[T, T1, T2, T3]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range ln.list.cells {
			if v, ok := ln.unwrap(ln.list.cells[i]); ok {
				if !yield(ln.pipe.apply(v)) {
					return
				}
			}
		}
	}
}

// Collect materializes Values into a slice.
func (ln Lane[T, T1, T2, T3]) Collect() []T {
	return slices.Collect(ln.Values())
}
