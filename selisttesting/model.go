package selisttesting

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// Sequence is the positional api shared by selist.List and Model
type Sequence[T any] interface {
	Size() int
	Get(idx int) (T, bool)
	Set(idx int, x T) (T, bool)
	Add(idx int, x T) bool
	Remove(idx int) (T, bool)
	PushBack(x T)
	Values() []T
}

// Model is the reference a List is checked against: a plain growable array
// with the same absent result conventions.
type Model[T comparable] struct {
	list *arraylist.List[T]
}

func NewModel[T comparable](values ...T) *Model[T] {
	return &Model[T]{list: arraylist.New[T](values...)}
}

func (m *Model[T]) Size() int { return m.list.Size() }

func (m *Model[T]) Get(idx int) (T, bool) {
	return m.list.Get(idx)
}

func (m *Model[T]) Set(idx int, x T) (T, bool) {
	old, ok := m.list.Get(idx)
	if !ok {
		return old, false
	}
	m.list.Set(idx, x)
	return old, true
}

func (m *Model[T]) Add(idx int, x T) bool {
	if idx < 0 || idx > m.list.Size() {
		return false
	}
	m.list.Insert(idx, x)
	return true
}

func (m *Model[T]) Remove(idx int) (T, bool) {
	old, ok := m.list.Get(idx)
	if !ok {
		return old, false
	}
	m.list.Remove(idx)
	return old, true
}

func (m *Model[T]) PushBack(x T) { m.list.Add(x) }

func (m *Model[T]) Values() []T { return m.list.Values() }
