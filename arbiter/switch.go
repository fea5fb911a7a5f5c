package arbiter

import (
	"log"

	"github.com/sarchlab/vcoresim/sim"
)

// Taggable is implemented by every wire type the Switch routes: it lets the
// switch rewrite a message's tag without knowing its concrete type.
type Taggable interface {
	GetTag() uint64
	SetTag(tag uint64) interface{}
}

// Switch arbitrates a request path like Mux, and additionally encodes the
// winning input's index into the low log2(R) bits of the request's tag so
// that the corresponding response can be routed back to that same input.
type Switch struct {
	name   string
	policy Policy

	i, o, r, lgR int
	reqDelay     uint64
	rspDelay     uint64

	ReqIn  []sim.Port
	ReqOut []sim.Port
	RspIn  []sim.Port
	RspOut []sim.Port

	cursors []int
	bypass  bool
}

// NewSwitch creates a Switch with i request inputs and o request outputs
// (and the mirrored o response inputs / i response outputs).
func NewSwitch(name string, clock sim.Clock, policy Policy, i, o int, reqDelay, rspDelay uint64) *Switch {
	r := validateArity(i, o)

	s := &Switch{
		name:     name,
		policy:   policy,
		i:        i,
		o:        o,
		r:        r,
		lgR:      log2(r),
		reqDelay: reqDelay,
		rspDelay: rspDelay,
	}

	s.ReqIn = make([]sim.Port, i)
	s.RspOut = make([]sim.Port, i)
	for idx := range s.ReqIn {
		s.ReqIn[idx] = sim.NewPort(name+".ReqIn", clock)
		s.RspOut[idx] = sim.NewPort(name+".RspOut", clock)
	}

	s.ReqOut = make([]sim.Port, o)
	s.RspIn = make([]sim.Port, o)
	for idx := range s.ReqOut {
		s.ReqOut[idx] = sim.NewPort(name+".ReqOut", clock)
		s.RspIn[idx] = sim.NewPort(name+".RspIn", clock)
	}

	if i == o {
		s.bypass = true
		for idx := range s.ReqIn {
			s.ReqIn[idx].Bind(s.ReqOut[idx])
			s.RspIn[idx].Bind(s.RspOut[idx])
		}
		return s
	}

	s.cursors = make([]int, o)

	return s
}

// Name returns the switch's name.
func (s *Switch) Name() string {
	return s.name
}

// Tick runs request arbitration and response routing for every group.
func (s *Switch) Tick() {
	if s.bypass {
		return
	}

	for o := 0; o < s.o; o++ {
		s.tickRequest(o)
		s.tickResponse(o)
	}
}

func (s *Switch) tickRequest(o int) {
	base := o * s.r
	cursor := s.cursors[o]

	for k := 0; k < s.r; k++ {
		localIdx := (cursor + k) % s.r
		globalIdx := base + localIdx

		in := s.ReqIn[globalIdx]
		if in.Empty() {
			continue
		}

		item := in.Pop()
		tagged, ok := item.(Taggable)
		if !ok {
			log.Panicf("switch %s: request item does not implement Taggable", s.name)
		}

		encoded := (tagged.GetTag() << uint(s.lgR)) | uint64(localIdx)
		s.ReqOut[o].Push(tagged.SetTag(encoded), s.reqDelay)

		if s.policy == RoundRobin {
			s.cursors[o] = (cursor + k + 1) % s.r
		}

		return
	}
}

func (s *Switch) tickResponse(o int) {
	in := s.RspIn[o]
	if in.Empty() {
		return
	}

	item := in.Pop()
	tagged, ok := item.(Taggable)
	if !ok {
		log.Panicf("switch %s: response item does not implement Taggable", s.name)
	}

	tag := tagged.GetTag()
	localIdx := int(tag & uint64(s.r-1))
	decoded := tag >> uint(s.lgR)

	globalIdx := o*s.r + localIdx
	s.RspOut[globalIdx].Push(tagged.SetTag(decoded), s.rspDelay)
}
