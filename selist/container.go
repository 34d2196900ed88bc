package selist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
)

var _ containers.Container[int] = (*List[int])(nil)

// Empty returns true if the list holds no elements
func (l *List[T]) Empty() bool { return l.n == 0 }

// Clear drops every element and node. The block size is kept.
func (l *List[T]) Clear() {
	l.arena.reset()
	l.head = noNode
	l.tail = noNode
	l.n = 0
}

// Values returns all elements in list order
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.n)
	for h := l.head; h != noNode; h = l.next(h) {
		b := l.blockOf(h)
		for i := 0; i < b.Len(); i++ {
			values = append(values, b.At(i))
		}
	}
	return values
}

// String returns a string representation of container
func (l *List[T]) String() string {
	str := "SEList\n"
	values := make([]string, 0, l.n)
	for _, value := range l.Values() {
		values = append(values, fmt.Sprintf("%v", value))
	}
	str += strings.Join(values, ", ")
	return str
}
