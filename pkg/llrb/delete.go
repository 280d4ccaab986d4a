package llrb

import (
	"github.com/flier/llrb/pkg/opt"
	"github.com/flier/llrb/pkg/tuple"
)

// moveRedLeft and moveRedRight borrow a red link from a sibling subtree so
// that a black link can be safely removed one level further down, then
// restore the local 2-3 shape with fixUp's transforms. Both require h to
// have both children present.
//
// Grounded on BlankSlateSystems/GoLLRB's moveRedLeft/moveRedRight.

func (t *Tree[K, V]) moveRedLeft(h id) id {
	t.colorFlip(h, false)

	hl := t.s.link(h)
	rl := t.s.link(hl.right)

	if rl.left.valid() && t.s.isRed(rl.left) {
		t.rotateRight(hl.right)
		h = t.rotateLeft(h)
		t.colorFlip(h, false)
	}

	return h
}

func (t *Tree[K, V]) moveRedRight(h id) id {
	t.colorFlip(h, false)

	hl := t.s.link(h)
	ll := t.s.link(hl.left)

	if ll.left.valid() && t.s.isRed(ll.left) {
		h = t.rotateRight(h)
		t.colorFlip(h, false)
	}

	return h
}

// removeMin deletes the minimum-keyed slot from the subtree rooted at h,
// returning the subtree's new root and the slot id that was removed. h must
// be valid.
//
// Grounded on BlankSlateSystems/GoLLRB's deleteMin.
func (t *Tree[K, V]) removeMin(h id) (id, id) {
	hl := t.s.link(h)

	if !hl.left.valid() {
		return none, h
	}

	if t.s.isBlack(hl.left) && !(t.s.link(hl.left).left.valid() && t.s.isRed(t.s.link(hl.left).left)) {
		h = t.moveRedLeft(h)
		hl = t.s.link(h)
	}

	newLeft, deleted := t.removeMin(hl.left)

	hl = t.s.link(h)
	hl.left = newLeft
	t.s.setLink(h, hl)
	t.reparent(newLeft, h)

	return t.fixUp(h), deleted
}

// deleteNode removes the slot whose key compares equal to key from the
// subtree rooted at h, returning the subtree's new root and the removed
// slot id, or none if key was not found.
//
// Grounded on BlankSlateSystems/GoLLRB's delete, with one deliberate
// departure: GoLLRB splices out an internal node by copying the successor's
// Item into h and deleting the successor's own node, which conflates h's
// identity with its content. Here h is an arena slot, not a pointer, so that
// shortcut would leave h's slot alive under the successor's key — instead
// the successor's link record is grafted into h's tree position and h's
// slot is the one removed.
func (t *Tree[K, V]) deleteNode(h id, key K) (id, id) {
	if !h.valid() {
		return none, none
	}

	hl := t.s.link(h)
	deleted := none

	if t.cmp(key, t.s.key(h)) < 0 {
		if !hl.left.valid() {
			return h, none
		}

		if t.s.isBlack(hl.left) && !(t.s.link(hl.left).left.valid() && t.s.isRed(t.s.link(hl.left).left)) {
			h = t.moveRedLeft(h)
			hl = t.s.link(h)
		}

		var newLeft id
		newLeft, deleted = t.deleteNode(hl.left, key)

		hl = t.s.link(h)
		hl.left = newLeft
		t.s.setLink(h, hl)
		t.reparent(newLeft, h)
	} else {
		if t.s.isRed(hl.left) {
			h = t.rotateRight(h)
			hl = t.s.link(h)
		}

		if t.cmp(key, t.s.key(h)) == 0 && !hl.right.valid() {
			return none, h
		}

		if hl.right.valid() && t.s.isBlack(hl.right) && !(t.s.link(hl.right).left.valid() && t.s.isRed(t.s.link(hl.right).left)) {
			h = t.moveRedRight(h)
			hl = t.s.link(h)
		}

		if t.cmp(key, t.s.key(h)) == 0 {
			// Splice h out by grafting the in-order successor's link record
			// into h's tree position: the successor inherits h's left child,
			// h's (already-reduced) right child, h's parent, and h's color.
			// h's own slot — not the successor's — is what gets removed, so
			// identity (which slot holds the key/value) and content (what
			// that slot's neighbors are) never get conflated.
			newRight, succ := t.removeMin(hl.right)

			succLink := link{self: succ, left: hl.left, right: newRight, parent: hl.parent}
			t.s.setLink(succ, succLink)
			t.reparent(hl.left, succ)
			t.reparent(newRight, succ)

			if p := hl.parent; p.valid() {
				pl := t.s.link(p)
				if pl.left == h {
					pl.left = succ
				} else {
					pl.right = succ
				}
				t.s.setLink(p, pl)
			}

			if t.s.isRed(h) {
				t.s.setRed(succ)
			} else {
				t.s.setBlack(succ)
			}

			deleted = h
			h = succ
		} else {
			var newRight id
			newRight, deleted = t.deleteNode(hl.right, key)

			hl = t.s.link(h)
			hl.right = newRight
			t.s.setLink(h, hl)
			t.reparent(newRight, h)
		}
	}

	return t.fixUp(h), deleted
}

// reparent sets child's parent field to p, if child is a valid slot. Every
// write-back of a subtree root into its parent's link record needs this, in
// case the subtree's root identity changed under a rotation performed by
// the recursive call that produced it.
func (t *Tree[K, V]) reparent(child, p id) {
	if !child.valid() {
		return
	}

	l := t.s.link(child)
	l.parent = p
	t.s.setLink(child, l)
}

// Delete removes key from the tree and returns its key/value pair wrapped
// in Some, or None if key was not present (spec §4.5). The freed slot is
// reclaimed immediately via swapRemove, so ids stay dense.
func (t *Tree[K, V]) Delete(key K) opt.Option[tuple.Tuple2[K, V]] {
	if !t.root.valid() {
		return opt.None[tuple.Tuple2[K, V]]()
	}

	if !t.find(key).valid() {
		return opt.None[tuple.Tuple2[K, V]]()
	}

	newRoot, removed := t.deleteNode(t.root, key)
	if !removed.valid() {
		return opt.None[tuple.Tuple2[K, V]]()
	}

	t.root = newRoot
	if t.root.valid() {
		t.s.setBlack(t.root)
	}

	result := tuple.New2(t.s.key(removed), t.s.value(removed))

	t.s.swapRemove(removed, &t.root)

	return opt.Some(result)
}
