package tri

import "testing"

func TestList_NewIsEmpty(t *testing.T) {
	t.Parallel()
	l := New[int, string, float64]()
	if !l.IsEmpty() || l.Len() != 0 {
		t.Fatalf("expected empty list, len=%d", l.Len())
	}
}

func TestList_FromKeepsOrder(t *testing.T) {
	t.Parallel()
	l := From(
		NewFirst[int, string, float64](1),
		NewSecond[int, string, float64]("a"),
		NewFirst[int, string, float64](2),
	)
	if l.Len() != 3 {
		t.Fatalf("expected len 3, got %d", l.Len())
	}
	if got := l.First().Collect(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestList_AllPreservesInsertionOrder(t *testing.T) {
	t.Parallel()
	l := New[int, string, float64]()
	l.First().Push(1)
	l.Second().Push("a")
	l.Third().Push(0.5)
	l.First().Push(2)

	var order []any
	for v := range l.All() {
		v.Match(
			func(n int) { order = append(order, n) },
			func(s string) { order = append(order, s) },
			func(f float64) { order = append(order, f) },
		)
	}

	want := []any{1, "a", 0.5, 2}
	if len(order) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], order[i])
		}
	}
}

func TestList_AllAppliesEachLanesPipeline(t *testing.T) {
	t.Parallel()
	l := New[int, string, float64]()
	l.First().Push(3)
	l.Second().Push("a")
	l.First().Push(5)
	l.First().Modify(func(x int) int { return x * 10 })

	var order []any
	for v := range l.All() {
		v.Match(
			func(n int) { order = append(order, n) },
			func(s string) { order = append(order, s) },
			func(f float64) { order = append(order, f) },
		)
	}

	want := []any{30, "a", 50}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], order[i])
		}
	}
}

func TestList_AllKeepsIdentityOfStoredValues(t *testing.T) {
	t.Parallel()
	stored := NewFirst[int, string, float64](7)
	l := From(stored)
	l.First().Modify(func(x int) int { return x + 1 })

	for v := range l.All() {
		if v.Id() != stored.Id() {
			t.Fatalf("transformed copy should keep the stored value's id")
		}
		if !v.CreatedAt().Equal(stored.CreatedAt()) {
			t.Fatalf("transformed copy should keep the stored value's creation time")
		}
		if n, ok := v.First(); !ok || n != 8 {
			t.Fatalf("expected transformed payload 8, got %d, ok=%v", n, ok)
		}
	}
}

func TestList_AllDoesNotMutateStorage(t *testing.T) {
	t.Parallel()
	l := New[int, string, float64]()
	l.First().Push(3)
	l.First().Modify(func(x int) int { return x * 10 })

	for range l.All() {
	}
	for range l.All() {
	}

	l.First().Reset()
	if got := l.First().Collect(); got[0] != 3 {
		t.Fatalf("stored value must stay 3 after transformed reads, got %d", got[0])
	}
}
