package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingTicker struct {
	name  string
	ticks []uint64
	d     *Driver
}

func (t *recordingTicker) Name() string {
	return t.name
}

func (t *recordingTicker) Tick() {
	t.ticks = append(t.ticks, t.d.Now())
}

var _ = Describe("Driver", func() {
	It("should start cycle numbering at 0", func() {
		d := NewDriver()
		t := &recordingTicker{name: "T", d: d}
		d.Register(t)

		d.Run(3)

		Expect(t.ticks).To(Equal([]uint64{0, 1, 2}))
		Expect(d.Now()).To(Equal(uint64(3)))
	})

	It("should make a port pushed with delay visible on the matching cycle", func() {
		d := NewDriver()
		port := NewPort("P", d)

		port.Inject("x")
		Expect(port.Front()).To(Equal("x"))
		port.Pop()

		port.Push("y", 4)
		d.Run(4)
		Expect(port.Front()).To(Equal("y"))
	})

	It("should tick every registered ticker once per cycle in order", func() {
		d := NewDriver()
		var order []string

		a := &orderTicker{name: "a", order: &order}
		b := &orderTicker{name: "b", order: &order}
		d.Register(a)
		d.Register(b)

		d.Tick()

		Expect(order).To(Equal([]string{"a", "b"}))
	})
})

type orderTicker struct {
	name  string
	order *[]string
}

func (t *orderTicker) Name() string {
	return t.name
}

func (t *orderTicker) Tick() {
	*t.order = append(*t.order, t.name)
}
