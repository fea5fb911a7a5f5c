package arbiter

import (
	"log"

	"github.com/sarchlab/vcoresim/sim"
)

// LocalMemDemux routes a single LSU request stream into one of two
// downstream paths by address classification: Shared addresses go to the
// local-memory path, everything else to the data-cache path. A 1-bit
// discriminant is appended to the tag on the way out and stripped on the
// way back so responses from either path can be merged onto one upstream
// response port without ambiguity.
type LocalMemDemux struct {
	name       string
	classifier func(addr uint64) bool // true => Shared
	delay      uint64

	ReqIn  sim.Port
	RspOut sim.Port

	LMEMReqOut sim.Port
	LMEMRspIn  sim.Port

	CacheReqOut sim.Port
	CacheRspIn  sim.Port
}

// addressedReq is implemented by request types the demux can classify by
// address.
type addressedReq interface {
	Taggable
	FirstAddr() (uint64, bool)
}

// NewLocalMemDemux creates a LocalMemDemux. isShared classifies an address
// as belonging to the local-memory path.
func NewLocalMemDemux(name string, clock sim.Clock, isShared func(addr uint64) bool, delay uint64) *LocalMemDemux {
	return &LocalMemDemux{
		name:        name,
		classifier:  isShared,
		delay:       delay,
		ReqIn:       sim.NewPort(name+".ReqIn", clock),
		RspOut:      sim.NewPort(name+".RspOut", clock),
		LMEMReqOut:  sim.NewPort(name+".LMEMReqOut", clock),
		LMEMRspIn:   sim.NewPort(name+".LMEMRspIn", clock),
		CacheReqOut: sim.NewPort(name+".CacheReqOut", clock),
		CacheRspIn:  sim.NewPort(name+".CacheRspIn", clock),
	}
}

// Name returns the demux's name.
func (d *LocalMemDemux) Name() string {
	return d.name
}

// Tick forwards one request and drains one response from each path.
func (d *LocalMemDemux) Tick() {
	d.forward()
	d.backward(d.LMEMRspIn)
	d.backward(d.CacheRspIn)
}

func (d *LocalMemDemux) forward() {
	if d.ReqIn.Empty() {
		return
	}

	item := d.ReqIn.Pop()
	req, ok := item.(addressedReq)
	if !ok {
		log.Panicf("localmemdemux %s: request does not support address classification", d.name)
	}

	addr, hasAddr := req.FirstAddr()
	shared := hasAddr && d.classifier(addr)

	bit := uint64(0)
	dst := d.CacheReqOut
	if shared {
		bit = 1
		dst = d.LMEMReqOut
	}

	encoded := (req.GetTag() << 1) | bit
	dst.Push(req.SetTag(encoded), d.delay)
}

func (d *LocalMemDemux) backward(src sim.Port) {
	if src.Empty() {
		return
	}

	item := src.Pop()
	rsp, ok := item.(Taggable)
	if !ok {
		log.Panicf("localmemdemux %s: response does not implement Taggable", d.name)
	}

	decoded := rsp.GetTag() >> 1
	d.RspOut.Push(rsp.SetTag(decoded), d.delay)
}
