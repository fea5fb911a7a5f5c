package arbiter

import "github.com/sarchlab/vcoresim/sim"

// Mux arbitrates I inputs down to O outputs, I/O = R inputs per output
// group, R a power of two. When I == O every input is bound directly to its
// output at construction and Tick is a no-op.
type Mux struct {
	name   string
	policy Policy

	i, o, r int
	delay   uint64

	Inputs  []sim.Port
	Outputs []sim.Port

	cursors []int
	bypass  bool
}

// NewMux creates a Mux with i inputs and o outputs, forwarding with a fixed
// per-grant delay.
func NewMux(name string, clock sim.Clock, policy Policy, i, o int, delay uint64) *Mux {
	r := validateArity(i, o)

	m := &Mux{
		name:   name,
		policy: policy,
		i:      i,
		o:      o,
		r:      r,
		delay:  delay,
	}

	m.Inputs = make([]sim.Port, i)
	for idx := range m.Inputs {
		m.Inputs[idx] = sim.NewPort(name+".Input", clock)
	}

	m.Outputs = make([]sim.Port, o)
	for idx := range m.Outputs {
		m.Outputs[idx] = sim.NewPort(name+".Output", clock)
	}

	if i == o {
		m.bypass = true
		for idx := range m.Inputs {
			m.Inputs[idx].Bind(m.Outputs[idx])
		}
		return m
	}

	m.cursors = make([]int, o)

	return m
}

// Name returns the mux's name.
func (m *Mux) Name() string {
	return m.name
}

// Tick runs one round of arbitration per output group.
func (m *Mux) Tick() {
	if m.bypass {
		return
	}

	for o := 0; o < m.o; o++ {
		m.tickOutput(o)
	}
}

func (m *Mux) tickOutput(o int) {
	base := o * m.r
	cursor := m.cursors[o]

	for k := 0; k < m.r; k++ {
		idx := base + (cursor+k)%m.r

		in := m.Inputs[idx]
		if in.Empty() {
			continue
		}

		item := in.Pop()
		m.Outputs[o].Push(item, m.delay)

		if m.policy == RoundRobin {
			m.cursors[o] = (cursor + k + 1) % m.r
		}

		return
	}
}
