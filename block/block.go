package block

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Block is a capacity limited double ended sequence of T
type Block[T any] struct {
	capacity int
	items    deque.Deque[T]
}

// New creates an empty block which will hold at most capacity elements
func New[T any](capacity int) *Block[T] {
	if capacity < 1 {
		panic(fmt.Errorf("%w: %d", ErrCapacityInvalid, capacity))
	}
	return &Block[T]{capacity: capacity}
}

func (b *Block[T]) Len() int    { return b.items.Len() }
func (b *Block[T]) Cap() int    { return b.capacity }
func (b *Block[T]) Full() bool  { return b.items.Len() == b.capacity }
func (b *Block[T]) Empty() bool { return b.items.Len() == 0 }

// At returns the element at local position i
func (b *Block[T]) At(i int) T {
	b.checkIndex(i, b.items.Len())
	return b.items.At(i)
}

// Set replaces the element at local position i and returns the previous value
func (b *Block[T]) Set(i int, x T) T {
	b.checkIndex(i, b.items.Len())
	old := b.items.At(i)
	b.items.Set(i, x)
	return old
}

func (b *Block[T]) PushFront(x T) {
	b.checkRoom()
	b.items.PushFront(x)
}

func (b *Block[T]) PushBack(x T) {
	b.checkRoom()
	b.items.PushBack(x)
}

func (b *Block[T]) PopFront() T {
	b.checkNotEmpty()
	return b.items.PopFront()
}

func (b *Block[T]) PopBack() T {
	b.checkNotEmpty()
	return b.items.PopBack()
}

// Add inserts x so that it occupies local position i. i may equal Len, in
// which case x is appended.
func (b *Block[T]) Add(i int, x T) {
	b.checkRoom()
	b.checkIndex(i, b.items.Len()+1)
	b.items.Insert(i, x)
}

// Remove deletes and returns the element at local position i
func (b *Block[T]) Remove(i int) T {
	b.checkIndex(i, b.items.Len())
	return b.items.Remove(i)
}

// Drain appends every element, front to back, to dst and leaves the block
// empty.
func (b *Block[T]) Drain(dst []T) []T {
	for b.items.Len() > 0 {
		dst = append(dst, b.items.PopFront())
	}
	return dst
}

func (b *Block[T]) checkRoom() {
	if b.items.Len() >= b.capacity {
		panic(fmt.Errorf("%w: capacity %d", ErrFull, b.capacity))
	}
}

func (b *Block[T]) checkNotEmpty() {
	if b.items.Len() == 0 {
		panic(ErrEmpty)
	}
}

func (b *Block[T]) checkIndex(i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, limit))
	}
}
