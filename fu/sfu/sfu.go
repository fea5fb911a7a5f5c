// Package sfu implements the special-function unit: warp control, CSR ops,
// and coprocessor dispatch (section 4.6 of the specification).
package sfu

import (
	"log"

	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
)

// WarpScheduler is the front-end collaborator for warp-suspending SFU ops.
type WarpScheduler interface {
	Resume(wid uint32)
	WSpawn(arg1, arg2 uint64) bool
	Barrier(arg1, arg2 uint64, wid uint32) bool
}

// Coprocessor is a raster, texture, or output-merger engine external to the
// core. SFU holds indices into a registry of these, not direct references
// (the arena-and-index pattern of the design notes), so that coprocessors
// can be shared across cores.
type Coprocessor struct {
	Input  sim.Port
	Output sim.Port
}

// Unit is the SFU functional unit.
type Unit struct {
	name string
	cid  uint32

	issueWidth int

	Inputs  []sim.Port
	Outputs []sim.Port

	// CoprocessorOutputs are every raster/texture/OM output port the core
	// has registered. Multiple cores may watch the same coprocessor
	// output; only traces addressed to this SFU's cid are drained.
	CoprocessorOutputs []sim.Port

	RasterUnits []Coprocessor
	TexUnits    []Coprocessor
	OMUnits     []Coprocessor

	scheduler WarpScheduler
}

// NewUnit creates an SFU unit for the given core id.
func NewUnit(name string, clock sim.Clock, cid uint32, issueWidth int, scheduler WarpScheduler) *Unit {
	u := &Unit{
		name:       name,
		cid:        cid,
		issueWidth: issueWidth,
		scheduler:  scheduler,
		Inputs:     make([]sim.Port, issueWidth),
		Outputs:    make([]sim.Port, issueWidth),
	}

	for i := 0; i < issueWidth; i++ {
		u.Inputs[i] = sim.NewPort(name+".Input", clock)
		u.Outputs[i] = sim.NewPort(name+".Output", clock)
	}

	return u
}

// Name returns the unit's name.
func (u *Unit) Name() string {
	return u.name
}

// Tick drains returning coprocessor work, then issues one op per lane.
func (u *Unit) Tick() {
	u.drainCoprocessors()

	for iw := 0; iw < u.issueWidth; iw++ {
		u.issueLane(iw)
	}
}

func (u *Unit) drainCoprocessors() {
	for _, port := range u.CoprocessorOutputs {
		if port.Empty() {
			continue
		}

		t := port.Front().(*trace.Trace)
		if t.CID != u.cid {
			continue
		}

		port.Pop()
		u.Outputs[int(t.WID)%u.issueWidth].Push(t, 1)
	}
}

func (u *Unit) retire(t *trace.Trace, outIdx int, delay uint64, releaseWarp bool) {
	u.Outputs[outIdx].Push(t, delay)

	if t.EOP && releaseWarp {
		u.scheduler.Resume(t.WID)
	}
}

// dispatch hands t off to a coprocessor's input and, per the warp resuming
// at dispatch rather than at the coprocessor's eventual return, releases the
// warp right away when t.EOP && t.FetchStall.
func (u *Unit) dispatch(input sim.Port, t *trace.Trace) {
	input.Push(t, 2)

	if t.EOP && t.FetchStall {
		u.scheduler.Resume(t.WID)
	}
}

func (u *Unit) issueLane(iw int) {
	item := u.Inputs[iw].Pop()
	if item == nil {
		return
	}

	t := item.(*trace.Trace)

	switch t.SFUType {
	case trace.TMC, trace.SPLIT, trace.JOIN, trace.PRED,
		trace.CSRRW, trace.CSRRS, trace.CSRRC:
		u.retire(t, iw, 4, t.FetchStall)

	case trace.WSPAWN:
		releaseWarp := t.FetchStall
		if t.EOP {
			data := t.Data.(trace.SFUData)
			releaseWarp = u.scheduler.WSpawn(data.Arg1, data.Arg2)
		}
		u.retire(t, iw, 4, releaseWarp)

	case trace.BAR:
		releaseWarp := t.FetchStall
		if t.EOP {
			data := t.Data.(trace.SFUData)
			releaseWarp = u.scheduler.Barrier(data.Arg1, data.Arg2, t.WID)
		}
		u.retire(t, iw, 4, releaseWarp)

	case trace.RASTER:
		data := t.Data.(trace.SFUData)
		u.dispatch(u.RasterUnits[data.RasterIdx].Input, t)

	case trace.TEX:
		data := t.Data.(trace.SFUData)
		u.dispatch(u.TexUnits[data.TexIdx].Input, t)

	case trace.OM:
		data := t.Data.(trace.SFUData)
		u.dispatch(u.OMUnits[data.OMIdx].Input, t)

	case trace.CMOV:
		log.Panicf("sfu: CMOV is not an implemented sfu_type")

	default:
		log.Panicf("sfu: unknown sfu_type %v", t.SFUType)
	}
}
