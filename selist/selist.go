package selist

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// List is a positional sequence stored as a doubly linked chain of bounded
// blocks. It is not safe for concurrent use.
type List[T any] struct {
	n         int
	blockSize int
	head      handle
	tail      handle
	arena     arena[T]
	log       logger.Logger
}

// New creates an empty list. The block size defaults to DefaultBlockSize and
// is fixed for the lifetime of the list.
func New[T any](opts ...Option) (*List[T], error) {
	options := NewOptions(opts...)
	if options.blockSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSizeInvalid, options.blockSize)
	}
	return &List[T]{
		blockSize: options.blockSize,
		head:      noNode,
		tail:      noNode,
		log:       options.log,
	}, nil
}

// Size returns the number of elements. O(1)
func (l *List[T]) Size() int { return l.n }

func (l *List[T]) BlockSize() int { return l.blockSize }

// Nodes returns the number of blocks currently in the chain
func (l *List[T]) Nodes() int { return l.arena.live() }

// Get returns the element at idx. The second result is false, and the list
// untouched, when idx is not in [0, Size()).
func (l *List[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= l.n {
		var zero T
		return zero, false
	}
	h, off := l.locate(idx)
	return l.blockOf(h).At(off), true
}

// Update calls fn with a pointer to the element at idx and stores whatever fn
// leaves there. It returns false without calling fn when idx is out of range.
func (l *List[T]) Update(idx int, fn func(*T)) bool {
	if idx < 0 || idx >= l.n {
		return false
	}
	h, off := l.locate(idx)
	b := l.blockOf(h)
	v := b.At(off)
	fn(&v)
	b.Set(off, v)
	return true
}

// Set replaces the element at idx and returns the previous value
func (l *List[T]) Set(idx int, x T) (T, bool) {
	if idx < 0 || idx >= l.n {
		var zero T
		return zero, false
	}
	h, off := l.locate(idx)
	return l.blockOf(h).Set(off, x), true
}

// PushBack appends x, starting a new tail block when the current one is full
func (l *List[T]) PushBack(x T) {
	if l.tail == noNode || l.blockOf(l.tail).Full() {
		l.appendNode()
	}
	l.blockOf(l.tail).PushBack(x)
	l.n++
}

// Add inserts x so that it ends up at idx. idx == Size() appends. Any other
// idx outside [0, Size()] is a no-op and Add returns false.
func (l *List[T]) Add(idx int, x T) bool {
	if idx < 0 || idx > l.n {
		return false
	}
	if idx == l.n {
		l.PushBack(x)
		return true
	}

	origin, off := l.locate(idx)

	stop, full := l.scan(origin, isFull[T])
	if full == l.blockSize {
		l.spread(origin)
	} else {
		if l.blockOf(stop).Full() {
			if stop != l.tail {
				invariantf("add scan stopped on full node %d which is not the tail", stop)
			}
			stop = l.appendNode()
		}
		l.shiftBackward(origin, stop)
	}

	b := l.blockOf(origin)
	if b.Full() || off > b.Len() {
		invariantf("no room at origin node %d (len %d, offset %d)", origin, b.Len(), off)
	}
	b.Add(off, x)
	l.n++
	return true
}

// Remove deletes and returns the element at idx. The second result is false,
// and the list untouched, when idx is not in [0, Size()).
func (l *List[T]) Remove(idx int) (T, bool) {
	var old T
	if idx < 0 || idx >= l.n {
		return old, false
	}

	origin, off := l.locate(idx)

	stop, slack := l.scan(origin, hasSlack[T])
	if slack == l.blockSize {
		l.gather(origin)

		// gather moves elements across the window, so resolve again
		h, off := l.locate(idx)
		old = l.blockOf(h).Remove(off)
		if l.blockOf(h).Empty() {
			l.unlink(h)
		}
	} else {
		old = l.blockOf(origin).Remove(off)
		l.shiftForward(origin, stop)
		if l.blockOf(stop).Empty() {
			l.unlink(stop)
		}
	}

	l.n--
	if l.n == 0 && (l.head != noNode || l.tail != noNode) {
		invariantf("empty list still has nodes (head %d, tail %d)", l.head, l.tail)
	}
	return old, true
}
