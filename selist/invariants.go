package selist

import "fmt"

// CheckInvariants walks the whole chain and returns an error wrapping
// ErrInvariant describing the first problem found, or nil.
//
// Checked: every node holds between 1 and blockSize elements, the prev and
// next links agree, head and tail are the chain ends, the block sizes sum to
// Size() and every live arena node is on the chain.
func (l *List[T]) CheckInvariants() error {
	if (l.head == noNode) != (l.tail == noNode) {
		return fmt.Errorf("%w: head %d, tail %d", ErrInvariant, l.head, l.tail)
	}
	if l.n == 0 && l.head != noNode {
		return fmt.Errorf("%w: empty list has head %d", ErrInvariant, l.head)
	}

	live := l.arena.live()
	visited, sum := 0, 0
	prev := noNode
	for h := l.head; h != noNode; {
		if !l.arena.valid(h) {
			return fmt.Errorf("%w: dangling handle %d after %d", ErrInvariant, h, prev)
		}
		visited++
		if visited > live {
			return fmt.Errorf("%w: chain longer than %d live nodes, cycle?", ErrInvariant, live)
		}

		n := &l.arena.nodes[h]
		if n.prev != prev {
			return fmt.Errorf("%w: node %d prev is %d, want %d", ErrInvariant, h, n.prev, prev)
		}
		size := n.block.Len()
		if size < 1 || size > l.blockSize {
			return fmt.Errorf("%w: node %d holds %d elements, block size %d", ErrInvariant, h, size, l.blockSize)
		}
		sum += size
		prev = h
		h = n.next
	}

	if prev != l.tail {
		return fmt.Errorf("%w: chain ends at %d, tail is %d", ErrInvariant, prev, l.tail)
	}
	if visited != live {
		return fmt.Errorf("%w: %d nodes on chain, %d live in arena", ErrInvariant, visited, live)
	}
	if sum != l.n {
		return fmt.Errorf("%w: blocks hold %d elements, size is %d", ErrInvariant, sum, l.n)
	}
	return nil
}
