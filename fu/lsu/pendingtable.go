// Package lsu implements the load/store unit: per-bank pending-load tracking,
// fence serialization, and the memory-request/response lifecycle described
// in section 4.4 of the specification.
package lsu

import (
	"log"

	"github.com/sarchlab/vcoresim/trace"
)

// PendingEntry is one outstanding load: the trace waiting for its data and
// the set of lanes of the original request that have not yet responded.
type PendingEntry struct {
	Trace         *trace.Trace
	RemainingMask uint64
}

// PendingTable is a fixed-capacity, index-addressable slot table of
// outstanding loads. The slot index doubles as the memory tag.
type PendingTable struct {
	slots    []*PendingEntry
	size     int
	capacity int
}

// NewPendingTable creates a PendingTable with the given capacity.
func NewPendingTable(capacity int) *PendingTable {
	if capacity <= 0 {
		log.Panic("pending table capacity must be positive")
	}

	return &PendingTable{
		slots:    make([]*PendingEntry, capacity),
		capacity: capacity,
	}
}

// Full reports whether every slot is allocated.
func (t *PendingTable) Full() bool {
	return t.size == t.capacity
}

// Empty reports whether no slot is allocated.
func (t *PendingTable) Empty() bool {
	return t.size == 0
}

// Size returns the number of allocated slots.
func (t *PendingTable) Size() int {
	return t.size
}

// Allocate reserves the first free slot for entry and returns its tag.
// Allocating into a full table is a fatal implementation bug: callers must
// check Full() first.
func (t *PendingTable) Allocate(entry *PendingEntry) uint32 {
	if entry.RemainingMask == 0 {
		log.Panic("pending table: allocated entry must have a non-empty mask")
	}

	for i, s := range t.slots {
		if s == nil {
			t.slots[i] = entry
			t.size++
			return uint32(i)
		}
	}

	log.Panic("pending table: allocate called on a full table")
	return 0
}

// At returns the entry at tag. Looking up an unallocated tag is a fatal
// implementation bug.
func (t *PendingTable) At(tag uint32) *PendingEntry {
	if int(tag) >= len(t.slots) || t.slots[tag] == nil {
		log.Panicf("pending table: tag %d is not allocated", tag)
	}

	return t.slots[tag]
}

// Release frees the slot at tag. Releasing an unallocated tag is a fatal
// implementation bug.
func (t *PendingTable) Release(tag uint32) {
	if int(tag) >= len(t.slots) || t.slots[tag] == nil {
		log.Panicf("pending table: release of unallocated tag %d", tag)
	}

	t.slots[tag] = nil
	t.size--
}

// OutstandingLanes returns the total number of lanes still awaiting a
// response, summed across all allocated slots — the pending_loads counter
// of the specification.
func (t *PendingTable) OutstandingLanes() int {
	total := 0
	for _, s := range t.slots {
		if s != nil {
			total += popcount(s.RemainingMask)
		}
	}
	return total
}

func popcount(mask uint64) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}
