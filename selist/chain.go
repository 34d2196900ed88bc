package selist

import (
	"github.com/forestrie/go-selist/block"
)

// Node chain bookkeeping. head and tail are kept directly on the List, both
// are noNode exactly when the list holds no elements.

// insertAfter links a new empty node after h. h == noNode inserts at the head.
func (l *List[T]) insertAfter(h handle) handle {
	nh := l.arena.alloc(l.blockSize)
	nn := l.arena.at(nh)

	if h == noNode {
		nn.next = l.head
		l.head = nh
	} else {
		at := l.arena.at(h)
		nn.next = at.next
		nn.prev = h
		at.next = nh
	}

	if nn.next != noNode {
		l.arena.at(nn.next).prev = nh
	} else {
		l.tail = nh
	}

	nodeAllocCounter.Inc(1)
	return nh
}

// appendNode links a new empty node at the tail
func (l *List[T]) appendNode() handle {
	h := l.insertAfter(l.tail)
	if l.log != nil {
		l.log.Debugf("selist: new tail node %d, nodes=%d", h, l.arena.live())
	}
	return h
}

// unlink detaches h from the chain and releases it
func (l *List[T]) unlink(h handle) {
	n := l.arena.at(h)

	if n.prev != noNode {
		l.arena.at(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != noNode {
		l.arena.at(n.next).prev = n.prev
	} else {
		l.tail = n.prev
	}

	l.arena.release(h)
	nodeFreeCounter.Inc(1)
}

func (l *List[T]) next(h handle) handle { return l.arena.at(h).next }

func (l *List[T]) prev(h handle) handle { return l.arena.at(h).prev }

// blockOf returns the block owned by h. Unlike the *node it remains valid
// when the arena grows.
func (l *List[T]) blockOf(h handle) *block.Block[T] {
	return l.arena.at(h).block
}
