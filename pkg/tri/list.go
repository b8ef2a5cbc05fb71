package tri

import "iter"

// List stores elements of the three types T1, T2 and T3 in one
// insertion-ordered sequence, with an independent modifier pipeline per
// type. The triple is expected to name three distinct types.
//
// A List is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally. Pushing while a sequence
// returned by All or Lane.Values is still being consumed invalidates the
// remainder of that walk.
type List[T1, T2, T3 any] struct {
	cells  []Value[T1, T2, T3]
	first  pipeline[T1]
	second pipeline[T2]
	third  pipeline[T3]
}

// New creates an empty list.
func New[T1, T2, T3 any]() *List[T1, T2, T3] {
	return &List[T1, T2, T3]{}
}

// From creates a list holding an initial ordered sequence of tagged values.
func From[T1, T2, T3 any](values ...Value[T1, T2, T3]) *List[T1, T2, T3] {
	l := New[T1, T2, T3]()
	l.cells = append(l.cells, values...)
	return l
}

func (l *List[T1, T2, T3]) Len() int {
	return len(l.cells)
}

func (l *List[T1, T2, T3]) IsEmpty() bool {
	return len(l.cells) == 0
}

// All yields every stored value in insertion order, each passed through its
// own type's pipeline as current at the moment the value is pulled. The
// sequence is finite and restartable; storage is never mutated by a walk.
func (l *List[T1, T2, T3]) All() iter.Seq[Value[T1, T2, T3]] {
	return func(yield func(Value[T1, T2, T3]) bool) {
		for i := range l.cells {
			if !yield(l.transformed(l.cells[i])) {
				return
			}
		}
	}
}

// transformed applies the active slot's pipeline to a copy of c. The copy
// keeps c's tag, id and creation time.
func (l *List[T1, T2, T3]) transformed(c Value[T1, T2, T3]) Value[T1, T2, T3] {
	switch c.active {
	case slotFirst:
		c.first = l.first.apply(c.first)
	case slotSecond:
		c.second = l.second.apply(c.second)
	case slotThird:
		c.third = l.third.apply(c.third)
	}
	return c
}
