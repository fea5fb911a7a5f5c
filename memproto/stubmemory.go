package memproto

import "github.com/sarchlab/vcoresim/sim"

// StubMemory is a minimal memory responder: it answers every MemReq on its
// Input port with a MemRsp carrying the same tag after a fixed latency. It
// models no timing variation, contention, or data; it exists only so the
// LSU fabric can be exercised end to end without a full cache/DRAM
// simulator, which is out of scope for the core.
type StubMemory struct {
	name    string
	latency uint64

	Input  sim.Port
	Output sim.Port
}

// NewStubMemory creates a StubMemory answering every request after latency
// cycles.
func NewStubMemory(name string, clock sim.Clock, latency uint64) *StubMemory {
	return &StubMemory{
		name:    name,
		latency: latency,
		Input:   sim.NewPort(name+".Input", clock),
		Output:  sim.NewPort(name+".Output", clock),
	}
}

// Name returns the stub's name.
func (m *StubMemory) Name() string {
	return m.name
}

// Tick answers at most one request per cycle.
func (m *StubMemory) Tick() {
	if m.Input.Empty() {
		return
	}

	req := m.Input.Pop().(MemReq)
	rsp := MemRsp{Tag: uint64(req.Tag), CID: req.CID, UUID: req.UUID}
	m.Output.Push(rsp, m.latency)
}
