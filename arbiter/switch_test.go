package arbiter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
)

var _ = Describe("Switch", func() {
	var driver *sim.Driver

	BeforeEach(func() {
		driver = sim.NewDriver()
	})

	It("should encode the winning input's index into the tag and decode it on the way back", func() {
		s := NewSwitch("S", driver, Priority, 4, 1, 1, 1)
		driver.Register(s)

		req := memproto.LsuReqBuilder{}.WithTag(5).Build()
		s.ReqIn[2].Inject(req)

		driver.Run(1)

		got := s.ReqOut[0].Pop().(memproto.LsuReq)
		Expect(got.Tag).To(Equal(uint32((5 << 2) | 2)))

		rsp := memproto.LsuRspBuilder{}.WithTag(got.GetTag()).Build()
		s.RspIn[0].Inject(rsp)

		driver.Run(1)

		routed := s.RspOut[2].Pop().(memproto.LsuRsp)
		Expect(routed.Tag).To(Equal(uint64(5)))
	})

	It("should bypass-bind when I == O", func() {
		s := NewSwitch("S", driver, Priority, 2, 2, 1, 1)
		driver.Register(s)

		req := memproto.LsuReqBuilder{}.WithTag(1).Build()
		s.ReqIn[1].Push(req, 1)

		driver.Run(1)

		Expect(s.ReqOut[1].Front()).To(Equal(req))
	})
})
