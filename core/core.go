package core

import (
	"log"
	"strconv"

	"github.com/sarchlab/vcoresim/config"
	"github.com/sarchlab/vcoresim/fu/alu"
	"github.com/sarchlab/vcoresim/fu/fpu"
	"github.com/sarchlab/vcoresim/fu/lsu"
	"github.com/sarchlab/vcoresim/fu/sfu"
	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
	"github.com/sarchlab/vcoresim/tracing"
)

// Stats aggregates the per-core counters implied throughout the
// specification's component descriptions.
type Stats struct {
	LoadLatency uint64
	Loads       uint64
	Stores      uint64

	ResumeCalls  uint64
	WSpawnCalls  uint64
	BarrierCalls uint64
}

// Core is one SIMT core's functional-unit back-end: the ALU, FPU, LSU and
// SFU units, wired to a Frontend for warp-scheduler callbacks. Core is
// itself a tracing.NamedHookable: attaching a tracer via tracing.CollectTrace
// reports one task per issued instruction that has both EOP and FetchStall
// set, spanning from Issue to the Resume of its warp. Other instructions
// start no task.
type Core struct {
	sim.HookableBase

	name string
	cid  uint32

	issueWidth int

	ALU *alu.Unit
	FPU *fpu.Unit
	LSU *lsu.Unit
	SFU *sfu.Unit

	frontend Frontend

	inflight map[uint32]string

	resumeCalls, wspawnCalls, barrierCalls uint64
}

// NewCore builds a Core for core id cid from cfg, wired to frontend for
// warp-scheduler callbacks. The caller is responsible for registering the
// returned Core's units (via Units()) with a sim.Driver, and for wiring the
// LSU's per-bank ReqOut/RspIn ports and the SFU's coprocessor ports to
// downstream fabric.
func NewCore(name string, clock interface {
	Now() uint64
}, cid uint32, cfg config.Config, frontend Frontend) *Core {
	if frontend == nil {
		log.Panic("core: frontend must not be nil")
	}

	c := &Core{
		name:       name,
		cid:        cid,
		issueWidth: cfg.IssueWidth,
		frontend:   frontend,
		inflight:   make(map[uint32]string),
	}

	c.ALU = alu.NewUnit(name+".ALU", clock, cfg.IssueWidth, cfg.LatencyIMUL, cfg.XLEN, c)
	c.FPU = fpu.NewUnit(name+".FPU", clock, cfg.IssueWidth, cfg.LatencyFMA, cfg.LatencyFDIV, cfg.LatencyFSQRT, cfg.LatencyFCVT)
	c.LSU = lsu.NewUnit(name+".LSU", clock, cfg.IssueWidth, cfg.NumLSUBlocks, cfg.NumLSULanes, cfg.PendingTableCapacity, c)
	c.SFU = sfu.NewUnit(name+".SFU", clock, cid, cfg.IssueWidth, c)

	return c
}

// Name returns the core's name.
func (c *Core) Name() string {
	return c.name
}

// CID returns the core's id.
func (c *Core) CID() uint32 {
	return c.cid
}

// Units returns every Ticker the core owns, in the registration order a
// sim.Driver should tick them: ALU, FPU, LSU, then SFU.
func (c *Core) Units() []interface {
	Name() string
	Tick()
} {
	return []interface {
		Name() string
		Tick()
	}{c.ALU, c.FPU, c.LSU, c.SFU}
}

// Issue enqueues t into issue lane iw of the unit selected by t.FUClass,
// stamping t's CID with this core's id. This is the front-end→back-end
// upstream interface of section 6; it uses Inject rather than Push because
// the front-end is not itself bound by the inter-SimObject delay contract.
func (c *Core) Issue(iw int, t *trace.Trace) {
	t.CID = c.cid

	if c.NumHooks() > 0 && t.EOP && t.FetchStall {
		id := sim.GetIDGenerator().Generate()
		c.inflight[t.WID] = id
		tracing.StartTask(id, "", c, t.FUClass.String(), strconv.FormatUint(uint64(t.WID), 10), t)
	}

	switch t.FUClass {
	case trace.ALU:
		c.ALU.Inputs[iw].Inject(t)
	case trace.FPU:
		c.FPU.Inputs[iw].Inject(t)
	case trace.LSU:
		c.LSU.Inputs[iw].Inject(t)
	case trace.SFU:
		c.SFU.Inputs[iw].Inject(t)
	default:
		log.Panicf("core: unknown fu_class %v", t.FUClass)
	}
}

// Resume implements alu.WarpResumer, lsu.WarpResumer and part of
// sfu.WarpScheduler by forwarding to the configured Frontend.
func (c *Core) Resume(wid uint32) {
	c.resumeCalls++

	if id, ok := c.inflight[wid]; ok {
		delete(c.inflight, wid)
		tracing.EndTask(id, c)
	}

	c.frontend.Resume(wid)
}

// WSpawn implements sfu.WarpScheduler by forwarding to the configured
// Frontend.
func (c *Core) WSpawn(arg1, arg2 uint64) bool {
	c.wspawnCalls++
	return c.frontend.WSpawn(arg1, arg2)
}

// Barrier implements sfu.WarpScheduler by forwarding to the configured
// Frontend.
func (c *Core) Barrier(arg1, arg2 uint64, wid uint32) bool {
	c.barrierCalls++
	return c.frontend.Barrier(arg1, arg2, wid)
}

// Stats snapshots the core's performance counters.
func (c *Core) Stats() Stats {
	return Stats{
		LoadLatency:  c.LSU.Stats.LoadLatency,
		Loads:        c.LSU.Stats.Loads,
		Stores:       c.LSU.Stats.Stores,
		ResumeCalls:  c.resumeCalls,
		WSpawnCalls:  c.wspawnCalls,
		BarrierCalls: c.barrierCalls,
	}
}
