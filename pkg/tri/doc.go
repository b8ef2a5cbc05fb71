// Package tri provides an insertion-ordered container for elements of
// exactly three fixed types, with lazily applied per-type transformations.
//
// A List[T1, T2, T3] stores tagged values in one sequence and keeps an
// independent modifier pipeline per element type. Reads never materialize
// anything up front: filtering and transformation happen when each element
// is pulled, against the pipeline state current at that moment, so a read
// after a Modify or Reset observes the new pipeline even for values pushed
// long before.
//
// Type-parameterized operations go through lanes. A Lane is a compile-time
// witness that its type is one of the triple: it can only be built by
// List.First, List.Second or List.Third, so calls naming a foreign type do
// not compile. There is no runtime type inspection anywhere.
//
// Key operations:
// - New/From: create a list, empty or from initial tagged values
// - Lane.Push: append an element of the lane's type
// - Lane.Modify/Reset: grow or clear the lane's modifier pipeline
// - Lane.Values/Collect: lazy filtered view of the lane's elements
// - List.All: whole-list traversal, each value transformed by its own lane
//
// A List is single-threaded by contract: no internal locking, and pushing
// while a sequence from a prior read is still being consumed invalidates
// that walk. Callers needing shared access must serialize it themselves.
package tri
