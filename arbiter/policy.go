// Package arbiter implements the generic N-to-M arbitration fabric
// (section 4.5 of the specification): a request-only Mux, a request/response
// Switch that multiplexes tags, and the two LSU-specific adapters that sit
// between the LSU unit and the memory subsystem.
package arbiter

import "log"

// Policy selects how a Mux or Switch chooses among backlogged inputs.
type Policy int

// Arbitration policies.
const (
	// Priority always grants the lowest-indexed non-empty input in a
	// group.
	Priority Policy = iota

	// RoundRobin grants the first non-empty input starting from a cursor
	// that advances past the granted input every time it serves one.
	RoundRobin
)

func validateArity(i, o int) (r int) {
	if i < o {
		log.Panicf("arbiter: input count %d must be >= output count %d", i, o)
	}

	if i%o != 0 {
		log.Panicf("arbiter: input count %d must be a multiple of output count %d", i, o)
	}

	r = i / o
	if r&(r-1) != 0 {
		log.Panicf("arbiter: group size %d (I/O) must be a power of two", r)
	}

	return r
}

func log2(r int) int {
	lg := 0
	for (1 << uint(lg)) < r {
		lg++
	}
	return lg
}
