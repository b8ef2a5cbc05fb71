package tri

// Modifier is a pure transformation applied to stored elements of one type.
// It must return the same output for the same input for as long as it is
// registered; side effects are outside the contract.
type Modifier[T any] func(T) T

// Identity returns its argument unchanged. A lane with no registered
// modifiers behaves as if Identity were its pipeline.
func Identity[T any](t T) T {
	return t
}

// Compose builds a single modifier that applies g first and then f, like
// standard function composition: Compose(f, g)(x) == f(g(x)).
func Compose[T any](f, g Modifier[T]) Modifier[T] {
	return func(t T) T {
		return f(g(t))
	}
}

// pipeline holds the ordered modifiers registered for one element type.
// Composition is memoized: the fold over mods is computed on the first
// apply after a mutation and cached until the next push or reset.
type pipeline[T any] struct {
	mods     []Modifier[T]
	composed Modifier[T]
}

func (p *pipeline[T]) push(m Modifier[T]) {
	p.mods = append(p.mods, m)
	p.composed = nil
}

func (p *pipeline[T]) reset() {
	p.mods = nil
	p.composed = nil
}

func (p *pipeline[T]) depth() int {
	return len(p.mods)
}

// apply runs the current composed modifier. Modifiers registered first run
// first: for mods [f1, f2], apply(x) == f2(f1(x)).
func (p *pipeline[T]) apply(t T) T {
	if p.composed == nil {
		composed := Modifier[T](Identity[T])
		for _, m := range p.mods {
			composed = Compose(m, composed)
		}
		p.composed = composed
	}
	return p.composed(t)
}
