package lsu

import (
	"log"

	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
	"github.com/sarchlab/vcoresim/trace"
)

// WarpResumer is called when a retiring trace was suspending its warp.
type WarpResumer interface {
	Resume(wid uint32)
}

// Bank is one of NumLSUBlocks parallel LSU slices: its own downstream
// request/response ports, its own pending-load table, and its own fence
// lock.
type Bank struct {
	ReqOut sim.Port
	RspIn  sim.Port

	Pending *PendingTable

	FenceLock  bool
	FenceTrace *trace.Trace
}

// Unit is the LSU functional unit.
type Unit struct {
	name string

	issueWidth int
	numBlocks  int
	numLanes   int

	Inputs  []sim.Port
	Outputs []sim.Port
	Banks   []*Bank

	resumer WarpResumer

	Stats Stats
}

// Stats aggregates the per-unit counters the specification describes but
// does not name a container for.
type Stats struct {
	LoadLatency uint64
	Loads       uint64
	Stores      uint64
}

// NewUnit creates an LSU unit with the given bank count, lane width and
// per-bank pending-table capacity.
func NewUnit(
	name string,
	clock sim.Clock,
	issueWidth, numBlocks, numLanes, pendingCapacity int,
	resumer WarpResumer,
) *Unit {
	u := &Unit{
		name:       name,
		issueWidth: issueWidth,
		numBlocks:  numBlocks,
		numLanes:   numLanes,
		resumer:    resumer,
		Inputs:     make([]sim.Port, issueWidth),
		Outputs:    make([]sim.Port, issueWidth),
		Banks:      make([]*Bank, numBlocks),
	}

	for i := 0; i < issueWidth; i++ {
		u.Inputs[i] = sim.NewPort(name+".Input", clock)
		u.Outputs[i] = sim.NewPort(name+".Output", clock)
	}

	for b := 0; b < numBlocks; b++ {
		u.Banks[b] = &Bank{
			ReqOut:  sim.NewPort(name+".ReqOut", clock),
			RspIn:   sim.NewPort(name+".RspIn", clock),
			Pending: NewPendingTable(pendingCapacity),
		}
	}

	return u
}

// Name returns the unit's name.
func (u *Unit) Name() string {
	return u.name
}

// Tick runs the three phases of section 4.4 in order: drain statistics,
// absorb responses, issue.
func (u *Unit) Tick() {
	u.drainStats()
	u.absorbResponses()
	u.issue()
}

func (u *Unit) drainStats() {
	for _, b := range u.Banks {
		u.Stats.LoadLatency += uint64(b.Pending.OutstandingLanes())
	}
}

func (u *Unit) absorbResponses() {
	for _, b := range u.Banks {
		if b.RspIn.Empty() {
			continue
		}

		rsp := b.RspIn.Pop().(memproto.LsuRsp)
		entry := b.Pending.At(uint32(rsp.Tag))
		entry.RemainingMask &^= rsp.Mask

		if entry.RemainingMask != 0 {
			continue
		}

		t := entry.Trace
		outIdx := int(t.WID) % u.issueWidth
		u.Outputs[outIdx].Push(t, 1)
		b.Pending.Release(uint32(rsp.Tag))

		if t.EOP && t.FetchStall {
			u.resumer.Resume(t.WID)
		}
	}
}

func (u *Unit) issue() {
	for iw := 0; iw < u.issueWidth; iw++ {
		b := u.Banks[iw%u.numBlocks]
		u.issueLane(iw, b)
	}
}

func (u *Unit) issueLane(iw int, b *Bank) {
	if b.FenceLock {
		if !b.Pending.Empty() {
			return
		}

		t := b.FenceTrace
		b.FenceTrace = nil
		b.FenceLock = false
		u.Outputs[iw].Push(t, 1)

		if t.EOP && t.FetchStall {
			u.resumer.Resume(t.WID)
		}

		return
	}

	if u.Inputs[iw].Empty() {
		return
	}

	t := u.Inputs[iw].Front().(*trace.Trace)

	switch t.LSUType {
	case trace.FENCE:
		b.FenceTrace = t
		b.FenceLock = true
		u.Inputs[iw].Pop()

	case trace.STORE:
		u.issueStore(iw, b, t)

	case trace.LOAD:
		u.issueLoad(iw, b, t)

	default:
		log.Panicf("lsu: unknown lsu_type %v", t.LSUType)
	}
}

func (u *Unit) activeMask(t *trace.Trace) uint64 {
	var mask uint64
	for i := 0; i < u.numLanes; i++ {
		if t.LaneActive(u.numLanes, i) {
			mask |= 1 << uint(i)
		}
	}
	return mask
}

func (u *Unit) issueStore(iw int, b *Bank, t *trace.Trace) {
	data := t.Data.(trace.LSUData)
	mask := u.activeMask(t)

	req := memproto.LsuReqBuilder{}.
		WithMask(mask).
		WithAddrs(data.Addrs).
		WithWrite(true).
		WithCID(t.CID).
		WithUUID(t.UUID).
		Build()

	b.ReqOut.Push(req, 1)
	u.Stats.Stores += uint64(popcount(mask))

	u.Outputs[iw].Push(t, 1)
	u.Inputs[iw].Pop()

	if t.EOP && t.FetchStall {
		u.resumer.Resume(t.WID)
	}
}

func (u *Unit) issueLoad(iw int, b *Bank, t *trace.Trace) {
	if b.Pending.Full() {
		if !t.LogOnce {
			log.Printf("lsu %s: bank %d pending table full, stalling lane %d",
				u.name, iw%u.numBlocks, iw)
			t.LogOnce = true
		}
		return
	}

	data := t.Data.(trace.LSUData)
	mask := u.activeMask(t)

	entry := &PendingEntry{Trace: t, RemainingMask: mask}
	tag := b.Pending.Allocate(entry)

	req := memproto.LsuReqBuilder{}.
		WithMask(mask).
		WithAddrs(data.Addrs).
		WithWrite(false).
		WithTag(tag).
		WithCID(t.CID).
		WithUUID(t.UUID).
		Build()

	b.ReqOut.Push(req, 1)
	u.Stats.Loads += uint64(popcount(mask))
	u.Inputs[iw].Pop()
}
