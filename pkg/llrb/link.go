package llrb

// link is the per-slot structural record {self, left, right, parent}.
//
// It is pointer-free — every field is a [id] — which is what lets it live in
// arena-allocated, contiguously addressed storage rather than behind a Go
// pointer per node (see pkg/llrb/arena.go). self is redundant with the slot's
// own array index; append sets it and [store.swapRemove] rewrites it when it
// moves the last live slot, and the test-only invariant audit checks that it
// always equals the index.
type link struct {
	self, left, right, parent id
}
