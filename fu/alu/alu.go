// Package alu implements the integer ALU functional unit: fixed- and
// variable-latency arithmetic, branches, and syscalls (section 4.2 of the
// specification).
package alu

import (
	"log"

	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
)

// WarpResumer is called when a retiring trace was suspending its warp.
type WarpResumer interface {
	Resume(wid uint32)
}

// Unit is the ALU functional unit. It owns IssueWidth input and output
// ports and nothing else: there is no shared resource across lanes.
type Unit struct {
	name string

	issueWidth int
	latencyIMUL int
	xlen        int

	Inputs  []sim.Port
	Outputs []sim.Port

	resumer WarpResumer
}

// NewUnit creates an ALU unit with IssueWidth independent lanes.
func NewUnit(name string, clock sim.Clock, issueWidth, latencyIMUL, xlen int, resumer WarpResumer) *Unit {
	u := &Unit{
		name:        name,
		issueWidth:  issueWidth,
		latencyIMUL: latencyIMUL,
		xlen:        xlen,
		resumer:     resumer,
		Inputs:      make([]sim.Port, issueWidth),
		Outputs:     make([]sim.Port, issueWidth),
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

// Tick advances every issue lane by one cycle.
func (u *Unit) Tick() {
	for iw := 0; iw < u.issueWidth; iw++ {
		u.tickLane(iw)
	}
}

func (u *Unit) tickLane(iw int) {
	item := u.Inputs[iw].Pop()
	if item == nil {
		return
	}

	t := item.(*trace.Trace)
	delay := u.delay(t.ALUType)

	u.Outputs[iw].Push(t, delay)

	if t.EOP && t.FetchStall {
		u.resumer.Resume(t.WID)
	}
}

func (u *Unit) delay(op trace.ALUType) uint64 {
	switch op {
	case trace.ARITH, trace.BRANCH, trace.SYSCALL:
		return 4
	case trace.IMUL:
		return uint64(u.latencyIMUL + 2)
	case trace.IDIV:
		return uint64(u.xlen + 2)
	default:
		log.Panicf("alu: unknown alu_type %v", op)
		return 0
	}
}
