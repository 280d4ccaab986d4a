package llrb

// id is a dense, 32-bit slot identifier addressing a position in the arena's
// parallel containers.
//
// Slot ids are assigned by append and reclaimed by swap-remove. Deleting a
// slot changes the id of at most one other slot: the last live slot, which
// is moved into the freed position (see [store.swapRemove]).
type id uint32

// none is the sentinel id denoting "no slot". It is never assigned to a live
// slot: the largest addressable live slot is maxID.
const none id = 1<<32 - 1

// maxID is the largest id a live slot may hold, i.e. the arena can hold at
// most maxID+1 = 2^32-1 live slots.
const maxID id = 1<<32 - 2

func (i id) valid() bool { return i != none }
