package arbiter

import (
	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
)

// LsuMemAdapter explodes one LsuReq into up to Lanes per-lane MemReqs, one
// per downstream port, and coalesces per-lane MemRsps back into LsuRsps.
// Each outgoing LsuRsp covers exactly the one lane that answered; the LSU
// unit's pending table absorbs these single-lane partials the same way it
// absorbs any other partial response.
type LsuMemAdapter struct {
	name       string
	lanes      int
	classifier memproto.Classifier
	delay      uint64

	ReqIn  sim.Port
	RspOut sim.Port

	ReqOut []sim.Port
	RspIn  []sim.Port
}

// NewLsuMemAdapter creates an LsuMemAdapter fanning out to lanes downstream
// ports.
func NewLsuMemAdapter(name string, clock sim.Clock, lanes int, classifier memproto.Classifier, delay uint64) *LsuMemAdapter {
	a := &LsuMemAdapter{
		name:       name,
		lanes:      lanes,
		classifier: classifier,
		delay:      delay,
		ReqIn:      sim.NewPort(name+".ReqIn", clock),
		RspOut:     sim.NewPort(name+".RspOut", clock),
		ReqOut:     make([]sim.Port, lanes),
		RspIn:      make([]sim.Port, lanes),
	}

	for i := 0; i < lanes; i++ {
		a.ReqOut[i] = sim.NewPort(name+".ReqOut", clock)
		a.RspIn[i] = sim.NewPort(name+".RspIn", clock)
	}

	return a
}

// Name returns the adapter's name.
func (a *LsuMemAdapter) Name() string {
	return a.name
}

// Tick explodes one request and coalesces one response per lane.
func (a *LsuMemAdapter) Tick() {
	a.explode()

	for i := 0; i < a.lanes; i++ {
		a.coalesce(i)
	}
}

func (a *LsuMemAdapter) explode() {
	if a.ReqIn.Empty() {
		return
	}

	req := a.ReqIn.Pop().(memproto.LsuReq)

	for i := 0; i < a.lanes; i++ {
		if req.Mask&(1<<uint(i)) == 0 {
			continue
		}

		addr := req.Addrs[i]
		memReq := memproto.MemReq{
			Addr:  addr,
			Write: req.Write,
			Type:  a.classifier.Classify(addr),
			Tag:   req.Tag,
			CID:   req.CID,
			UUID:  req.UUID,
		}

		a.ReqOut[i].Push(memReq, a.delay)
	}
}

func (a *LsuMemAdapter) coalesce(lane int) {
	if a.RspIn[lane].Empty() {
		return
	}

	rsp := a.RspIn[lane].Pop().(memproto.MemRsp)

	lsuRsp := memproto.LsuRspBuilder{}.
		WithMask(1 << uint(lane)).
		WithTag(rsp.Tag).
		WithCID(rsp.CID).
		WithUUID(rsp.UUID).
		Build()

	a.RspOut.Push(lsuRsp, a.delay)
}
