package selist

import "math/bits"

// Block size arithmetic.
//
// The list keeps its block size fixed for its whole lifetime. That bounds the
// cost of any single spread or gather, but locating an index still walks
// O(n/b) nodes. The classical space efficient list sets b close to sqrt(n);
// callers that know their scale up front can get that via WithExpectedSize.

const minSuggestedBlockSize = 2

// SuggestBlockSize returns the smallest power of 2 whose square is at least n,
// and never less than 2.
func SuggestBlockSize(n uint64) int {
	if n <= minSuggestedBlockSize*minSuggestedBlockSize {
		return minSuggestedBlockSize
	}
	// sqrt(2^k) <= 2^ceil(k/2), where 2^k is n rounded up to a power of 2
	k := BitLength64(n - 1)
	b := uint64(1) << ((k + 1) / 2)
	return int(b)
}

func BitLength64(num uint64) uint64 { return uint64(bits.Len64(num)) }

// IsPow2 reports whether size is a perfect power of 2
func IsPow2(size uint) bool {
	return size != 0 && size&(size-1) == 0
}
