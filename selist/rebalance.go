package selist

import (
	"github.com/forestrie/go-selist/block"
)

func isFull[T any](b *block.Block[T]) bool   { return b.Full() }
func hasSlack[T any](b *block.Block[T]) bool { return !b.Full() }

// scan walks forward from origin over at most blockSize nodes for as long as
// want holds. It returns the node the walk stopped on and the number of nodes
// for which want held. The walk stops on the first node failing want, on the
// tail, or on the blockSize'th node satisfying want.
func (l *List[T]) scan(origin handle, want func(*block.Block[T]) bool) (handle, int) {
	count := 0
	h := origin
	for {
		if !want(l.blockOf(h)) {
			return h, count
		}
		count++

		next := l.next(h)
		if count == l.blockSize || next == noNode {
			return h, count
		}
		h = next
	}
}

// window returns the k consecutive nodes starting at origin
func (l *List[T]) window(origin handle, k int) []handle {
	nodes := make([]handle, 0, k+1)
	for h := origin; len(nodes) < k; h = l.next(h) {
		if h == noNode {
			invariantf("window of %d nodes from %d runs past the tail", k, origin)
		}
		nodes = append(nodes, h)
	}
	return nodes
}

// redistribute drains every node in nodes and refills the first into of them,
// in order, as evenly as possible. The remainder of the division goes to the
// leading nodes when extraAtFront is set, and to the trailing nodes otherwise.
func (l *List[T]) redistribute(nodes []handle, into int, extraAtFront bool) {
	items := make([]T, 0, l.blockSize*len(nodes))
	for _, h := range nodes {
		items = l.blockOf(h).Drain(items)
	}

	base, extra := len(items)/into, len(items)%into
	for i, h := range nodes[:into] {
		size := base
		if (extraAtFront && i < extra) || (!extraAtFront && i >= into-extra) {
			size++
		}
		if size > l.blockSize {
			invariantf("redistributing %d elements over %d nodes overflows block size %d",
				len(items), into, l.blockSize)
		}
		b := l.blockOf(h)
		for _, x := range items[:size] {
			b.PushBack(x)
		}
		items = items[size:]
	}
}

// spread makes room at origin when origin and the blockSize-1 nodes after it
// are all full. One new node is linked after the window and the window's
// elements are spread over blockSize+1 nodes. Origin keeps its leading
// elements and ends with blockSize-1 of them.
func (l *List[T]) spread(origin handle) {
	nodes := l.window(origin, l.blockSize)
	nodes = append(nodes, l.insertAfter(nodes[len(nodes)-1]))

	l.redistribute(nodes, len(nodes), false)

	spreadCounter.Inc(1)
	if l.log != nil {
		l.log.Debugf("selist: spread from node %d over %d nodes, nodes=%d", origin, len(nodes), l.arena.live())
	}
}

// gather compacts origin and the blockSize-1 nodes after it, all of which have
// slack, into blockSize-1 nodes and unlinks the node left empty. The extra
// elements of an uneven split go to the front, so origin never drops below two
// elements.
func (l *List[T]) gather(origin handle) {
	if l.blockSize < 2 {
		invariantf("gather with block size %d", l.blockSize)
	}
	nodes := l.window(origin, l.blockSize)

	l.redistribute(nodes, len(nodes)-1, true)

	last := nodes[len(nodes)-1]
	if !l.blockOf(last).Empty() {
		invariantf("gather left %d elements in trailing node %d", l.blockOf(last).Len(), last)
	}
	l.unlink(last)

	gatherCounter.Inc(1)
	if l.log != nil {
		l.log.Debugf("selist: gather from node %d into %d nodes, nodes=%d", origin, len(nodes)-1, l.arena.live())
	}
}

// shiftBackward opens one slot in origin by moving the last element of each
// node from stop's predecessor back to origin onto the front of its successor.
// stop must have room.
func (l *List[T]) shiftBackward(origin, stop handle) {
	for h := stop; h != origin; {
		prev := l.prev(h)
		if prev == noNode {
			invariantf("shift from node %d never reached origin %d", stop, origin)
		}
		l.blockOf(h).PushFront(l.blockOf(prev).PopBack())
		h = prev
	}
}

// shiftForward closes the slot left in origin by a removal: each node from
// origin up to, but not including, stop takes the front element of its
// successor. stop ends up one element short.
func (l *List[T]) shiftForward(origin, stop handle) {
	for h := origin; h != stop; {
		next := l.next(h)
		if next == noNode {
			invariantf("shift from node %d never reached stop %d", origin, stop)
		}
		l.blockOf(h).PushBack(l.blockOf(next).PopFront())
		h = next
	}
}
