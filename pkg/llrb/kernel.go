package llrb

import "github.com/flier/llrb/internal/debug"

// Rotation and color-flip are the three pure structural primitives every
// engine (insert, delete) is built from (spec §4.3). None of them allocate,
// and each assumes its required children are present. The two rotations
// return the slot id of the subtree's new root, with the black height of the
// subtree unchanged; colorFlip returns nothing.
//
// Grounded on BlankSlateSystems/GoLLRB's rotateLeft/rotateRight/flip, restated
// over arena slot ids with explicit parent-link maintenance instead of Go
// pointers.

func (t *Tree[K, V]) rotateLeft(n id) id {
	nl := t.s.link(n)
	r := nl.right
	debug.Assert(r.valid(), "rotateLeft requires a right child")
	debug.Assert(t.s.isRed(r), "rotateLeft on a black link")

	rl := t.s.link(r)

	nl.right = rl.left
	if rl.left.valid() {
		l := t.s.link(rl.left)
		l.parent = n
		t.s.setLink(rl.left, l)
	}

	rl.left = n
	rl.parent = nl.parent
	nl.parent = r

	if p := rl.parent; p.valid() {
		pl := t.s.link(p)
		if pl.left == n {
			pl.left = r
		} else {
			debug.Assert(pl.right == n, "parent does not reference the rotated node")
			pl.right = r
		}
		t.s.setLink(p, pl)
	}

	t.s.setLink(n, nl)
	t.s.setLink(r, rl)

	nRed := t.s.isRed(n)
	if t.s.isRed(r) {
		t.s.setRed(n)
	} else {
		t.s.setBlack(n)
	}
	if nRed {
		t.s.setRed(r)
	} else {
		t.s.setBlack(r)
	}

	return r
}

func (t *Tree[K, V]) rotateRight(n id) id {
	nl := t.s.link(n)
	l := nl.left
	debug.Assert(l.valid(), "rotateRight requires a left child")
	debug.Assert(t.s.isRed(l), "rotateRight on a black link")

	ll := t.s.link(l)

	nl.left = ll.right
	if ll.right.valid() {
		r := t.s.link(ll.right)
		r.parent = n
		t.s.setLink(ll.right, r)
	}

	ll.right = n
	ll.parent = nl.parent
	nl.parent = l

	if p := ll.parent; p.valid() {
		pl := t.s.link(p)
		if pl.left == n {
			pl.left = l
		} else {
			debug.Assert(pl.right == n, "parent does not reference the rotated node")
			pl.right = l
		}
		t.s.setLink(p, pl)
	}

	t.s.setLink(n, nl)
	t.s.setLink(l, ll)

	nRed := t.s.isRed(n)
	if t.s.isRed(l) {
		t.s.setRed(n)
	} else {
		t.s.setBlack(n)
	}
	if nRed {
		t.s.setRed(l)
	} else {
		t.s.setBlack(l)
	}

	return l
}

// fixUp restores the LLRB shape at n on the way back up from a mutation,
// applying each transform in sequence rather than as mutually exclusive
// branches: a left-rotation can expose a left-left-red violation, and either
// rotation can leave both children red, so each check re-reads n's current
// link record instead of the one captured before the previous transform.
// Both Insert and Delete call this same primitive at every ancestor level
// (spec §4.4, §4.5).
//
// Grounded on BlankSlateSystems/GoLLRB's fixUp, which insert's own rebalance
// step (walkUpRot23 in some forks) duplicates verbatim.
func (t *Tree[K, V]) fixUp(n id) id {
	nl := t.s.link(n)

	if nl.right.valid() && t.s.isRed(nl.right) && !(nl.left.valid() && t.s.isRed(nl.left)) {
		n = t.rotateLeft(n)
		nl = t.s.link(n)
	}

	if nl.left.valid() && t.s.isRed(nl.left) {
		ll := t.s.link(nl.left)
		if ll.left.valid() && t.s.isRed(ll.left) {
			n = t.rotateRight(n)
			nl = t.s.link(n)
		}
	}

	if nl.left.valid() && nl.right.valid() && t.s.isRed(nl.left) && t.s.isRed(nl.right) {
		t.colorFlip(n, false)
	}

	return n
}

// colorFlip toggles the color of n and both its children. assertBothRed
// additionally asserts that both children are red before flipping. Every
// call site passes false: fixUp, shared by insert and delete, checks that
// both children are red before it flips, and moveRedLeft/moveRedRight flip
// unconditionally.
func (t *Tree[K, V]) colorFlip(n id, assertBothRed bool) {
	l := t.s.link(n)
	debug.Assert(l.left.valid() && l.right.valid(), "colorFlip requires both children")

	if assertBothRed {
		debug.Assert(t.s.isRed(l.left) && t.s.isRed(l.right), "colorFlip requires both children red")
	}

	t.s.toggleColor(n)
	t.s.toggleColor(l.left)
	t.s.toggleColor(l.right)
}
