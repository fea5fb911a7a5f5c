// Package fpu implements the floating-point functional unit (section 4.3 of
// the specification). FPU ops never drive fetch_stall, so the unit has no
// warp-resume side effect.
package fpu

import (
	"log"

	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
)

// Unit is the FPU functional unit.
type Unit struct {
	name string

	issueWidth int
	latencyFMA, latencyFDIV, latencyFSQRT, latencyFCVT int

	Inputs  []sim.Port
	Outputs []sim.Port
}

// NewUnit creates an FPU unit with IssueWidth independent lanes.
func NewUnit(
	name string,
	clock sim.Clock,
	issueWidth, latencyFMA, latencyFDIV, latencyFSQRT, latencyFCVT int,
) *Unit {
	u := &Unit{
		name:         name,
		issueWidth:   issueWidth,
		latencyFMA:   latencyFMA,
		latencyFDIV:  latencyFDIV,
		latencyFSQRT: latencyFSQRT,
		latencyFCVT:  latencyFCVT,
		Inputs:       make([]sim.Port, issueWidth),
		Outputs:      make([]sim.Port, issueWidth),
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
		item := u.Inputs[iw].Pop()
		if item == nil {
			continue
		}

		t := item.(*trace.Trace)
		u.Outputs[iw].Push(t, u.delay(t.FPUType))
	}
}

func (u *Unit) delay(op trace.FPUType) uint64 {
	switch op {
	case trace.FNCP:
		return 4
	case trace.FMA:
		return uint64(u.latencyFMA + 2)
	case trace.FDIV:
		return uint64(u.latencyFDIV + 2)
	case trace.FSQRT:
		return uint64(u.latencyFSQRT + 2)
	case trace.FCVT:
		return uint64(u.latencyFCVT + 2)
	default:
		log.Panicf("fpu: unknown fpu_type %v", op)
		return 0
	}
}
