// Package llrb implements an in-memory, ordered key/value container backed
// by a left-leaning red-black tree whose nodes live in dense, arena-backed
// parallel arrays rather than individually heap-allocated structs (spec
// §§1-4).
package llrb

import (
	"github.com/flier/llrb/pkg/opt"
	"github.com/flier/llrb/pkg/res"
	"github.com/flier/llrb/pkg/tuple"
)

// Comparator orders two keys the way [cmp.Compare] does: negative if a sorts
// before b, zero if equal, positive if a sorts after b. Every call site in
// this package invokes it search-key-first (spec §4.2); a comparator that
// is not a strict total order silently corrupts the tree's shape.
type Comparator[K any] func(a, b K) int

// Tree is an ordered key/value container. The zero value is not usable;
// construct one with [New] or [NewWithCapacity].
type Tree[K, V any] struct {
	root id
	s    *store[K, V]
	cmp  Comparator[K]
}

// New returns an empty tree ordered by cmp, with no pre-reserved capacity.
func New[K, V any](cmp Comparator[K]) *Tree[K, V] {
	return NewWithCapacity[K, V](cmp, 0)
}

// NewWithCapacity returns an empty tree ordered by cmp, with capacity
// pre-reserved for at least capacity slots (spec §4, New/Reserve).
func NewWithCapacity[K, V any](cmp Comparator[K], capacity int) *Tree[K, V] {
	return &Tree[K, V]{
		root: none,
		s:    newStore[K, V](capacity),
		cmp:  cmp,
	}
}

// Len reports the number of key/value pairs currently stored.
func (t *Tree[K, V]) Len() int { return t.s.len }

// Cap reports the number of slots currently reserved, whether live or free.
func (t *Tree[K, V]) Cap() int { return t.s.cap() }

// Reserve grows the tree's backing storage so that at least n further
// insertions can proceed without allocating (spec §4, Reserve). It is the
// only operation on Tree that allocates.
func (t *Tree[K, V]) Reserve(n int) {
	t.s.reserve(n)
}

// Get looks up key and returns its value wrapped in Some, or None if key is
// not present (spec §4.2).
func (t *Tree[K, V]) Get(key K) opt.Option[V] {
	n := t.find(key)
	if !n.valid() {
		return opt.None[V]()
	}

	return opt.Some(t.s.value(n))
}

// Contains reports whether key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key).valid()
}

// Update overwrites the value stored at key and returns the previous
// key/value pair wrapped in Ok. It returns an Err wrapping ErrNotFound if
// key is not present; the tree is left unchanged in that case (spec §4.2).
func (t *Tree[K, V]) Update(key K, value V) res.Result[tuple.Tuple2[K, V]] {
	n := t.find(key)
	if !n.valid() {
		return res.Err[tuple.Tuple2[K, V]](ErrNotFound)
	}

	old := tuple.New2(t.s.key(n), t.s.value(n))
	t.s.setValue(n, value)

	return res.Ok(old)
}

// Close releases the tree's backing arena. The tree must not be used after
// calling Close.
func (t *Tree[K, V]) Close() {
	if t.s.alloc != nil {
		t.s.alloc.Reset()
	}
}
