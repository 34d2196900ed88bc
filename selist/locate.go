package selist

// locate resolves idx, which must be in [0, n), to the node owning it and the
// offset within that node's block. The walk starts from whichever end of the
// chain is nearer.
func (l *List[T]) locate(idx int) (handle, int) {
	if idx < 0 || idx >= l.n {
		invariantf("locate(%d) outside [0, %d)", idx, l.n)
	}

	if idx < l.n/2 {
		rem := idx
		for h := l.head; h != noNode; h = l.next(h) {
			size := l.blockOf(h).Len()
			if rem < size {
				return h, rem
			}
			rem -= size
		}
	} else {
		cur := l.n
		for h := l.tail; h != noNode; h = l.prev(h) {
			cur -= l.blockOf(h).Len()
			if cur <= idx {
				return h, idx - cur
			}
		}
	}

	invariantf("index %d not reachable in a chain holding %d elements", idx, l.n)
	return noNode, 0
}
