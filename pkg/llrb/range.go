package llrb

import (
	"iter"

	"github.com/flier/llrb/pkg/opt"
)

// Iterator is a pull-based inorder cursor over a bounded key range (spec
// §4.6). Calling Next after the tree has been mutated is undefined.
type Iterator[K, V any] struct {
	t        *Tree[K, V]
	min, max K
	stack    []id
}

// RangeIterator returns an Iterator yielding keys in [min, max] inorder.
func (t *Tree[K, V]) RangeIterator(min, max K) *Iterator[K, V] {
	it := &Iterator[K, V]{t: t, min: min, max: max}
	it.pushLeftSpine(t.root)
	return it
}

// pushLeftSpine pushes n and its left descendants onto the pending stack,
// skipping any subtree whose root key falls below min entirely (its left
// child is necessarily smaller still, so only the right child can contain
// qualifying keys).
func (it *Iterator[K, V]) pushLeftSpine(n id) {
	for n.valid() {
		if it.t.cmp(it.min, it.t.s.key(n)) > 0 {
			n = it.t.s.link(n).right
			continue
		}

		it.stack = append(it.stack, n)
		n = it.t.s.link(n).left
	}
}

// nextID pops the next inorder slot, pushing its right subtree's left
// spine before returning. It returns none once the stack is exhausted or
// once a popped key exceeds max (inorder order means every key after it
// would too, so the remaining stack is discarded).
func (it *Iterator[K, V]) nextID() id {
	if len(it.stack) == 0 {
		return none
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	if it.t.cmp(it.t.s.key(n), it.max) > 0 {
		it.stack = it.stack[:0]
		return none
	}

	it.pushLeftSpine(it.t.s.link(n).right)

	return n
}

// Next returns the next key in [min, max], inorder, or None once exhausted.
func (it *Iterator[K, V]) Next() opt.Option[K] {
	n := it.nextID()
	if !n.valid() {
		return opt.None[K]()
	}

	return opt.Some(it.t.s.key(n))
}

// Range collects keys in [min, max] inorder into out, stopping once out is
// full. It returns the number of keys written; overflow is clamped, not
// signaled (spec §4.6).
func (t *Tree[K, V]) Range(min, max K, out []K) int {
	it := Iterator[K, V]{t: t, min: min, max: max}
	it.pushLeftSpine(t.root)

	count := 0
	for count < len(out) {
		n := it.nextID()
		if !n.valid() {
			break
		}

		out[count] = t.s.key(n)
		count++
	}

	return count
}

// All is a range-over-func adaptor built on the pull iterator, yielding
// key/value pairs in [min, max] inorder for idiomatic Go 1.23 consumption:
//
//	for k, v := range t.All(lo, hi) { ... }
func (t *Tree[K, V]) All(min, max K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := Iterator[K, V]{t: t, min: min, max: max}
		it.pushLeftSpine(t.root)

		for {
			n := it.nextID()
			if !n.valid() {
				return
			}

			if !yield(t.s.key(n), t.s.value(n)) {
				return
			}
		}
	}
}
