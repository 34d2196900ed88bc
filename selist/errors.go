package selist

import (
	"errors"
	"fmt"
)

var (
	ErrBlockSizeInvalid = errors.New("block size must be at least 1")

	// ErrInvariant marks a defect in the list itself, never a caller error.
	// It is raised by panic from the mutating paths and returned by
	// CheckInvariants.
	ErrInvariant = errors.New("selist internal invariant violated")
)

// invariantf fails fast on an internal invariant violation
func invariantf(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}
