// Package core ties the functional units, the arbiter fabric, and the
// coprocessor registry together into a complete per-core back-end, and
// implements the warp-scheduler callback surface the units invoke.
package core

// Frontend is the front-end's callback surface, as described in section 6
// of the specification: resume un-suspends a warp, wspawn/barrier perform
// their respective control operation and report whether the initiating
// warp may resume immediately. The front-end itself (fetch/decode,
// register renaming, commit) is out of scope; Frontend is the only seam the
// back-end needs from it.
type Frontend interface {
	Resume(wid uint32)
	WSpawn(arg1, arg2 uint64) bool
	Barrier(arg1, arg2 uint64, wid uint32) bool
}

// SimpleFrontend is a minimal stand-in Frontend: it records which warps
// have been resumed and always grants spawn/barrier requests. It exists so
// the back-end can be driven and tested without a real front-end.
type SimpleFrontend struct {
	Resumed      []uint32
	WSpawnCalls  []([2]uint64)
	BarrierCalls []barrierCall
}

type barrierCall struct {
	Arg1, Arg2 uint64
	WID        uint32
}

// NewSimpleFrontend creates an empty SimpleFrontend.
func NewSimpleFrontend() *SimpleFrontend {
	return &SimpleFrontend{}
}

// Resume records that wid was resumed.
func (f *SimpleFrontend) Resume(wid uint32) {
	f.Resumed = append(f.Resumed, wid)
}

// WSpawn records the call and always grants immediate resume.
func (f *SimpleFrontend) WSpawn(arg1, arg2 uint64) bool {
	f.WSpawnCalls = append(f.WSpawnCalls, [2]uint64{arg1, arg2})
	return true
}

// Barrier records the call and always grants immediate resume.
func (f *SimpleFrontend) Barrier(arg1, arg2 uint64, wid uint32) bool {
	f.BarrierCalls = append(f.BarrierCalls, barrierCall{arg1, arg2, wid})
	return true
}
