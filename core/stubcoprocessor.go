package core

import (
	"github.com/sarchlab/vcoresim/fu/sfu"
	"github.com/sarchlab/vcoresim/sim"
)

// NewStubCoprocessor creates a raster/texture/output-merger stand-in: it
// echoes every trace received on Input back out on Output after a fixed
// latency, leaving the trace itself untouched. Real coprocessor internals
// are out of scope for the core; this exists only so the SFU's dispatch
// path can be exercised end to end.
func NewStubCoprocessor(name string, clock sim.Clock, latency uint64) *StubCoprocessor {
	return &StubCoprocessor{
		name:    name,
		latency: latency,
		Input:   sim.NewPort(name+".Input", clock),
		Output:  sim.NewPort(name+".Output", clock),
	}
}

// StubCoprocessor is the stand-in coprocessor implementation.
type StubCoprocessor struct {
	name    string
	latency uint64

	Input  sim.Port
	Output sim.Port
}

// Name returns the coprocessor's name.
func (c *StubCoprocessor) Name() string {
	return c.name
}

// Tick forwards at most one trace per cycle.
func (c *StubCoprocessor) Tick() {
	if c.Input.Empty() {
		return
	}

	item := c.Input.Pop()
	c.Output.Push(item, c.latency)
}

// Handle returns the sfu.Coprocessor view of this stub for registration with
// an SFU unit.
func (c *StubCoprocessor) Handle() sfu.Coprocessor {
	return sfu.Coprocessor{Input: c.Input, Output: c.Output}
}
