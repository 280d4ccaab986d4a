package llrb

import "errors"

// ErrFullTree is returned by Insert when the arena has reached its maximum
// addressable slot count (2^32-1 live slots) and cannot append another leaf.
var ErrFullTree = errors.New("llrb: tree has reached the maximum addressable slot count")

// ErrNotFound is returned by Update when the given key has no matching slot.
var ErrNotFound = errors.New("llrb: key not found")

// ErrAllocationFailure is the sentinel for an allocator that cannot satisfy
// a requested capacity. No function in this package returns it:
// NewWithCapacity and Reserve have no error result.
var ErrAllocationFailure = errors.New("llrb: allocation failure")
