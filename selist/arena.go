package selist

import (
	"github.com/forestrie/go-selist/block"
)

// handle addresses a node in the arena. noNode is the absent handle.
type handle int

const noNode handle = -1

// node wraps one block. next is the owning forward link, prev is only used
// for traversal.
type node[T any] struct {
	block *block.Block[T]
	next  handle
	prev  handle
}

// arena is a stable indexed pool of nodes. Released slots are reused before
// the pool grows.
type arena[T any] struct {
	nodes []node[T]
	free  []handle
}

func (a *arena[T]) alloc(blockSize int) handle {
	n := node[T]{block: block.New[T](blockSize), next: noNode, prev: noNode}
	if len(a.free) > 0 {
		h := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.nodes[h] = n
		return h
	}
	a.nodes = append(a.nodes, n)
	return handle(len(a.nodes) - 1)
}

func (a *arena[T]) release(h handle) {
	a.nodes[h] = node[T]{next: noNode, prev: noNode}
	a.free = append(a.free, h)
}

func (a *arena[T]) valid(h handle) bool {
	return h >= 0 && int(h) < len(a.nodes) && a.nodes[h].block != nil
}

func (a *arena[T]) at(h handle) *node[T] {
	if !a.valid(h) {
		invariantf("dangling node handle %d", h)
	}
	return &a.nodes[h]
}

func (a *arena[T]) reset() {
	a.nodes = nil
	a.free = nil
}

// live is the count of allocated, unreleased nodes
func (a *arena[T]) live() int {
	return len(a.nodes) - len(a.free)
}
