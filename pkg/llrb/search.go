package llrb

// find descends the BST using the comparator and returns the slot whose key
// compares equal, or none (spec §4.2).
//
// The comparator is always invoked as cmp(key, t.s.key(cursor)) — search key
// first — matching the donor LLRB sources' argument order exactly; inverting
// it silently flips every comparison in the tree.
func (t *Tree[K, V]) find(key K) id {
	cursor := t.root

	for cursor.valid() {
		switch c := t.cmp(key, t.s.key(cursor)); {
		case c < 0:
			cursor = t.s.link(cursor).left
		case c > 0:
			cursor = t.s.link(cursor).right
		default:
			return cursor
		}
	}

	return none
}

func (t *Tree[K, V]) min(n id) id {
	for {
		l := t.s.link(n).left
		if !l.valid() {
			return n
		}
		n = l
	}
}

func (t *Tree[K, V]) max(n id) id {
	for {
		r := t.s.link(n).right
		if !r.valid() {
			return n
		}
		n = r
	}
}
