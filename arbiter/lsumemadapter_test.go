package arbiter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
)

var _ = Describe("LsuMemAdapter", func() {
	var (
		driver  *sim.Driver
		adapter *LsuMemAdapter
	)

	BeforeEach(func() {
		driver = sim.NewDriver()
		classifier := memproto.NewClassifier(0xF0000000, 0xF0010000, true, 0x00100000, 16)
		adapter = NewLsuMemAdapter("A", driver, 4, classifier, 1)
		driver.Register(adapter)
	})

	It("should explode a multi-lane request into one MemReq per active lane", func() {
		req := memproto.LsuReqBuilder{}.
			WithMask(0b0101).
			WithAddrs([]uint64{0x10, 0x20, 0x30, 0x40}).
			WithTag(6).
			Build()
		adapter.ReqIn.Inject(req)

		driver.Run(1)

		r0 := adapter.ReqOut[0].Pop().(memproto.MemReq)
		Expect(r0.Addr).To(Equal(uint64(0x10)))
		Expect(adapter.ReqOut[1].Empty()).To(BeTrue())

		r2 := adapter.ReqOut[2].Pop().(memproto.MemReq)
		Expect(r2.Addr).To(Equal(uint64(0x30)))
	})

	It("should coalesce a per-lane response into a single-lane LsuRsp", func() {
		adapter.RspIn[1].Inject(memproto.MemRsp{Tag: 6})

		driver.Run(1)

		rsp := adapter.RspOut.Pop().(memproto.LsuRsp)
		Expect(rsp.Mask).To(Equal(uint64(1 << 1)))
		Expect(rsp.Tag).To(Equal(uint64(6)))
	})
})
