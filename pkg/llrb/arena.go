package llrb

import (
	"github.com/flier/llrb/internal/debug"
	"github.com/flier/llrb/pkg/arena"
	"github.com/flier/llrb/pkg/arena/slice"
)

// wordBits is the width of one color-vector word.
const wordBits = 64

// colors is a bit-packed color vector, one bit per slot: bit-set means black,
// bit-clear means red (spec §3). It is backed by arena memory because a
// [link] array and a color vector are exactly the kind of pointer-free,
// dense, id-addressed payload [arena.Arena] is built for.
//
// Fresh words are filled with all-ones, so growing the vector never needs to
// touch the freshly reserved slots' bits individually: black is the default,
// red is the color that gets explicitly assigned.
type colors struct {
	words slice.Slice[uint64]
}

func newColors(a *arena.Arena, nSlots int) colors {
	c := colors{words: slice.Make[uint64](a, wordsFor(nSlots))}
	c.fillBlack(0, c.words.Len())
	return c
}

func wordsFor(nSlots int) int { return (nSlots + wordBits - 1) / wordBits }

func (c *colors) fillBlack(fromWord, toWord int) {
	for i := fromWord; i < toWord; i++ {
		c.words.Store(i, ^uint64(0))
	}
}

func (c colors) isBlack(i id) bool {
	w, b := int(i)/wordBits, uint(i)%wordBits
	return c.words.Load(w)&(uint64(1)<<b) != 0
}

func (c colors) isRed(i id) bool { return !c.isBlack(i) }

func (c *colors) setBlack(i id) {
	w, b := int(i)/wordBits, uint(i)%wordBits
	c.words.Store(w, c.words.Load(w)|(uint64(1)<<b))
}

func (c *colors) setRed(i id) {
	w, b := int(i)/wordBits, uint(i)%wordBits
	c.words.Store(w, c.words.Load(w)&^(uint64(1)<<b))
}

func (c *colors) toggle(i id) {
	w, b := int(i)/wordBits, uint(i)%wordBits
	c.words.Store(w, c.words.Load(w)^(uint64(1)<<b))
}

func (c *colors) grow(a *arena.Arena, nSlots int) {
	n := wordsFor(nSlots)
	if n <= c.words.Len() {
		return
	}

	grown := slice.Make[uint64](a, n)
	copy(grown.Raw(), c.words.Raw())

	old := c.words.Len()
	c.words = grown
	c.fillBlack(old, n)
}

// store is the arena described in spec §4.1: four parallel containers
// (keys, values, links, colors) indexed by [id], plus the dense-slot
// bookkeeping (live count, capacity) needed to keep §3's invariant 10.
//
// keys/values are plain Go slices rather than arena-backed [slice.Slice],
// because K/V are arbitrary caller types that may hold pointers or
// interfaces, and [arena.Arena] is documented to only support pointer-free
// payloads (see DESIGN.md). links/colors are pointer-free by construction, so
// they are backed by the arena.
type store[K, V any] struct {
	alloc *arena.Arena

	keys   []K
	values []V
	links  slice.Slice[link]
	colors colors

	len int
}

func newStore[K, V any](capacity int) *store[K, V] {
	s := &store[K, V]{}
	if capacity > 0 {
		s.reserve(capacity)
	}
	return s
}

func (s *store[K, V]) cap() int { return cap(s.keys) }

// reserve grows capacity by at least n additional slots. Existing contents
// are preserved; fresh color bits are initialized black (spec §4, Reserve).
func (s *store[K, V]) reserve(n int) {
	want := s.len + n
	if want <= s.cap() {
		return
	}

	newCap := max(want, s.cap()*2, 8)

	if s.alloc == nil {
		s.alloc = new(arena.Arena)
	}

	newKeys := make([]K, s.len, newCap)
	copy(newKeys, s.keys)
	s.keys = newKeys

	newValues := make([]V, s.len, newCap)
	copy(newValues, s.values)
	s.values = newValues

	newLinks := slice.Make[link](s.alloc, newCap)
	copy(newLinks.Raw(), s.links.Raw())
	newLinks.SetLen(s.len)
	s.links = newLinks

	if s.len == 0 && s.colors.words.Empty() {
		s.colors = newColors(s.alloc, newCap)
	} else {
		s.colors.grow(s.alloc, newCap)
	}
}

// append assumes capacity (reserve must have been called) and never
// allocates. It is the only place a new slot id is minted.
func (s *store[K, V]) append(key K, value V, parent id, red bool) id {
	debug.Assert(s.len < s.cap(), "append called without reserved capacity")
	debug.Assert(id(s.len) != none, "slot id space exhausted")

	i := id(s.len)

	s.keys = append(s.keys, key)
	s.values = append(s.values, value)
	s.links = s.links.SetLen(s.len + 1)
	s.links.Store(int(i), link{self: i, left: none, right: none, parent: parent})

	if red {
		s.colors.setRed(i)
	} else {
		s.colors.setBlack(i)
	}

	s.len++

	return i
}

func (s *store[K, V]) key(i id) K     { return s.keys[i] }
func (s *store[K, V]) value(i id) V   { return s.values[i] }
func (s *store[K, V]) setValue(i id, v V) { s.values[i] = v }

func (s *store[K, V]) link(i id) link        { return s.links.Load(int(i)) }
func (s *store[K, V]) setLink(i id, l link)  { s.links.Store(int(i), l) }

func (s *store[K, V]) isRed(i id) bool {
	if !i.valid() {
		return false
	}
	return s.colors.isRed(i)
}

func (s *store[K, V]) isBlack(i id) bool { return !s.isRed(i) }

func (s *store[K, V]) setRed(i id)   { s.colors.setRed(i) }
func (s *store[K, V]) setBlack(i id) { s.colors.setBlack(i) }
func (s *store[K, V]) toggleColor(i id) { s.colors.toggle(i) }

// swapRemove removes slot i and, if it was not the last live slot, moves the
// last live slot into position i so that live ids remain the dense range
// [0, len) (spec §4.1, §3 invariant 10). root is rewritten if it pointed at
// the slot that got moved.
func (s *store[K, V]) swapRemove(i id, root *id) {
	debug.Assert(int(i) < s.len, "swapRemove of a non-live slot")

	last := id(s.len - 1)

	if i != last {
		movedLink := s.link(last)

		s.keys[i] = s.keys[last]
		s.values[i] = s.values[last]

		movedLink.self = i
		s.setLink(i, movedLink)

		if movedLink.left.valid() {
			l := s.link(movedLink.left)
			l.parent = i
			s.setLink(movedLink.left, l)
		}
		if movedLink.right.valid() {
			l := s.link(movedLink.right)
			l.parent = i
			s.setLink(movedLink.right, l)
		}
		if p := movedLink.parent; p.valid() {
			pl := s.link(p)
			if pl.left == last {
				pl.left = i
			} else {
				debug.Assert(pl.right == last, "parent does not reference the moved slot")
				pl.right = i
			}
			s.setLink(p, pl)
		}

		if s.colors.isBlack(last) {
			s.setBlack(i)
		} else {
			s.setRed(i)
		}

		if *root == last {
			*root = i
		}
	}

	var zeroK K
	var zeroV V
	s.keys[last] = zeroK
	s.keys = s.keys[:last]
	s.values[last] = zeroV
	s.values = s.values[:last]

	s.links = s.links.SetLen(int(last))

	s.len--
}
