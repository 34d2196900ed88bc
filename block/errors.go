package block

import "errors"

var (
	ErrCapacityInvalid = errors.New("block capacity must be at least 1")
	ErrFull            = errors.New("block is full")
	ErrEmpty           = errors.New("block is empty")
	ErrIndex           = errors.New("block index out of range")
)
