package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeClock struct {
	now uint64
}

func (c *fakeClock) Now() uint64 {
	return c.now
}

var _ = Describe("Port", func() {
	var (
		clock *fakeClock
		port  Port
	)

	BeforeEach(func() {
		clock = &fakeClock{}
		port = NewPort("TestPort", clock)
	})

	It("should not be visible before its delay elapses", func() {
		port.Push(42, 4)
		Expect(port.Empty()).To(BeTrue())

		clock.now = 3
		Expect(port.Empty()).To(BeTrue())

		clock.now = 4
		Expect(port.Front()).To(Equal(42))
	})

	It("should order entries by readyAt then by push order", func() {
		port.Push("late", 3)
		port.Push("early", 1)
		port.Push("also-early", 1)

		clock.now = 1
		Expect(port.Pop()).To(Equal("early"))
		Expect(port.Pop()).To(Equal("also-early"))
		Expect(port.Empty()).To(BeTrue())

		clock.now = 3
		Expect(port.Pop()).To(Equal("late"))
	})

	It("should make injected items visible immediately", func() {
		clock.now = 7
		port.Inject("now")
		Expect(port.Front()).To(Equal("now"))
	})

	It("should panic on a zero delay push", func() {
		Expect(func() { port.Push(1, 0) }).To(Panic())
	})

	It("should forward pushes through a bind", func() {
		dst := NewPort("Dst", clock)
		port.Bind(dst)

		port.Push("x", 2)
		clock.now = 2
		Expect(dst.Front()).To(Equal("x"))
	})

	It("should panic when reading the front of a bound port", func() {
		dst := NewPort("Dst", clock)
		port.Bind(dst)

		Expect(func() { port.Front() }).To(Panic())
	})

	It("should panic when bound twice", func() {
		dst := NewPort("Dst", clock)
		port.Bind(dst)

		Expect(func() { port.Bind(dst) }).To(Panic())
	})
})
