package tri

import (
	"time"

	"github.com/google/uuid"
)

type slot int

const (
	slotFirst slot = iota
	slotSecond
	slotThird
)

// Value is a closed sum over a list's three element types: exactly one
// payload slot is active at a time, identified by its tag. A Value is
// immutable once built; reads of the list produce transformed copies and
// never write back.
type Value[T1, T2, T3 any] struct {
	id        uuid.UUID
	createdAt time.Time
	active    slot
	first     T1
	second    T2
	third     T3
}

func NewFirst[T1, T2, T3 any](v T1) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		active:    slotFirst,
		first:     v,
	}
}

func NewSecond[T1, T2, T3 any](v T2) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		active:    slotSecond,
		second:    v,
	}
}

func NewThird[T1, T2, T3 any](v T3) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		active:    slotThird,
		third:     v,
	}
}

// First returns the T1 payload and whether it is the active slot.
func (v Value[T1, T2, T3]) First() (T1, bool) {
	return v.first, v.active == slotFirst
}

// Second returns the T2 payload and whether it is the active slot.
func (v Value[T1, T2, T3]) Second() (T2, bool) {
	return v.second, v.active == slotSecond
}

// Third returns the T3 payload and whether it is the active slot.
func (v Value[T1, T2, T3]) Third() (T3, bool) {
	return v.third, v.active == slotThird
}

// Match dispatches on the active slot and invokes exactly one handler.
// Nil handlers are skipped.
func (v Value[T1, T2, T3]) Match(onFirst func(T1), onSecond func(T2), onThird func(T3)) {
	switch v.active {
	case slotFirst:
		if onFirst != nil {
			onFirst(v.first)
		}
	case slotSecond:
		if onSecond != nil {
			onSecond(v.second)
		}
	case slotThird:
		if onThird != nil {
			onThird(v.third)
		}
	}
}

func (v Value[T1, T2, T3]) Id() uuid.UUID {
	return v.id
}

// CreatedAt time creation (UTC). Transformed copies produced by reads keep
// the id and creation time of the stored value they came from.
func (v Value[T1, T2, T3]) CreatedAt() time.Time {
	return v.createdAt
}
