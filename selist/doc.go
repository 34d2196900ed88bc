package selist

/*

# Space efficient lists

A List is an index addressable sequence (Get, Set, Add, Remove by integer
position) stored as a doubly linked chain of bounded blocks. Each block holds a
contiguous run of the sequence and at most b elements, b being the block size
fixed when the list is created.

The point of the structure is that an insert or delete at an arbitrary
position never shifts the whole sequence. It only moves elements across a
small neighbourhood of at most b+1 blocks.

	 head                                             tail
	+---------+    +---------+    +---------+    +---------+
	| 0 1 2 3 |<-->| 4 5 6   |<-->| 7 8 9 a |<-->| b c     |
	+---------+    +---------+    +---------+    +---------+

Every block on the chain holds between 1 and b elements. A block that empties
is unlinked immediately.

## Locating an index

Given i in [0, n), the owning block and the offset inside it are found by
walking from the head when i < n/2, summing block sizes, and from the tail
otherwise. With b fixed this is O(n/b) in the worst case, cheap near either
end. See sizing.go for choosing b from an expected size.

## Add

Add(i, x) resolves i to (origin, offset) and looks at up to b blocks starting
at origin.

* If some block in that window is not full, every block between origin and
  that block passes its last element to the front of its successor. Origin ends
  up with exactly one free slot. If the window runs into a full tail a new tail
  block is linked first.
* If all b blocks are full, a **spread** runs: one new block is linked after
  the window and the b*b elements are laid out over b+1 blocks, b-1 in each
  except the last which gets b. Origin keeps its leading elements, so the
  offset is still valid and there is room for x.

## Remove

Remove(i) resolves i and looks at up to b blocks starting at origin for
blocks with slack (fewer than b elements).

* If the window holds b blocks with slack, a **gather** runs: their elements
  (at most b*(b-1) of them) are laid out over the first b-1 blocks and the last
  block, now empty, is unlinked. The element is then removed from whichever
  block holds i after the move.
* Otherwise the element is removed from origin and each block from origin up
  to the first full block (or the tail) takes the front element of its
  successor. That last block ends one element short, and is unlinked if that
  leaves it empty.

Both rebalancing passes touch at most b+1 blocks.

## Storage of the chain

Nodes live in an arena and refer to each other by integer handle. The list
holds the head and tail handles directly, both absent exactly when the list is
empty. Unlinked nodes return their arena slot to a free list.

## Failure modes

Out of range positions are a normal outcome: Get, Set and Remove return false
as their second result, Add returns false, and nothing changes.

A broken chain, or a rebalancing pass that cannot find the room the element
count says must exist, is a defect in this package. Those paths panic with an
error wrapping ErrInvariant. CheckInvariants performs the full structural check
on demand and returns the same kind of error instead of panicking.

*/
