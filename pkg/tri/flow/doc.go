// Package flow provides a minimal fluent Chain for synchronous composition
// of operations on a single tri.Lane.
//
// It keeps the API surface very small:
// - On: begin a chain from a lane
// - Push: append one or more values
// - Modify/Reset: grow or clear the lane's pipeline
// - Each: trigger side effects per transformed element
// - Collect/Count/First: reduce to concrete values
//
// Flow is ideal for tests and small programs where chaining lane edits
// improves readability over repeated lane method calls.
package flow
