package selist

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

const DefaultBlockSize = 4

// Options configures a List. The zero value is not valid, use NewOptions.
type Options struct {
	blockSize int
	log       logger.Logger
}

type Option func(*Options)

// NewOptions returns the defaults with opts applied in order
func NewOptions(opts ...Option) Options {
	options := Options{blockSize: DefaultBlockSize}
	for _, o := range opts {
		o(&options)
	}
	return options
}

// WithBlockSize sets the fixed capacity of every block in the chain
func WithBlockSize(blockSize int) Option {
	return func(opts *Options) {
		opts.blockSize = blockSize
	}
}

// WithExpectedSize picks the block size for a list expected to hold about n
// elements. See SuggestBlockSize.
func WithExpectedSize(n uint64) Option {
	return func(opts *Options) {
		opts.blockSize = SuggestBlockSize(n)
	}
}

// WithLogger enables debug logging of chain restructuring. A nil logger
// (the default) disables it.
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.log = log
	}
}

func (o Options) BlockSize() int { return o.blockSize }
