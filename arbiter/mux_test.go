package arbiter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vcoresim/sim"
)

var _ = Describe("Mux", func() {
	var driver *sim.Driver

	BeforeEach(func() {
		driver = sim.NewDriver()
	})

	It("should bypass-bind when I == O", func() {
		m := NewMux("M", driver, Priority, 2, 2, 1)
		driver.Register(m)

		m.Inputs[0].Push("a", 1)
		m.Inputs[1].Push("b", 1)

		driver.Run(1)

		Expect(m.Outputs[0].Front()).To(Equal("a"))
		Expect(m.Outputs[1].Front()).To(Equal("b"))
	})

	It("should grant the lowest-indexed input under Priority", func() {
		m := NewMux("M", driver, Priority, 4, 1, 1)
		driver.Register(m)

		m.Inputs[2].Inject("low-priority")
		m.Inputs[1].Inject("high-priority")

		driver.Run(1)
		Expect(m.Outputs[0].Front()).To(Equal("high-priority"))

		m.Outputs[0].Pop()
		driver.Run(1)
		Expect(m.Outputs[0].Front()).To(Equal("low-priority"))
	})

	It("should rotate the cursor under RoundRobin", func() {
		m := NewMux("M", driver, RoundRobin, 2, 1, 1)
		driver.Register(m)

		m.Inputs[0].Inject("from-0")
		m.Inputs[1].Inject("from-1")

		driver.Run(1)
		first := m.Outputs[0].Pop()

		m.Inputs[0].Inject("from-0")
		m.Inputs[1].Inject("from-1")

		driver.Run(1)
		second := m.Outputs[0].Pop()

		Expect([]interface{}{first, second}).To(ConsistOf("from-0", "from-1"))
		Expect(first).NotTo(Equal(second))
	})
})
