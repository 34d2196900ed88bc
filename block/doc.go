package block

/*

# Bounded blocks

A Block is a fixed capacity double ended sequence. It is the unit of storage
for the chained-block list in the selist package: every node of the chain owns
exactly one Block and a Block is never shared between nodes.

Costs:

* PushFront, PushBack, PopFront and PopBack are O(1).
* At and Set are O(1).
* Add and Remove are O(distance to the nearer end).

The storage is a ring buffer (github.com/gammazero/deque). The capacity bound
is enforced here, the ring buffer itself is unbounded.

Like the mmr primitives, this is a low level api and places a **burden of
knowledge on the caller**. Pushing onto a full block, popping an empty block or
indexing out of range are defects in the caller, and they panic with an error
wrapping ErrFull, ErrEmpty or ErrIndex rather than returning one.

*/
