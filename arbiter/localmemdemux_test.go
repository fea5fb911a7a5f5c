package arbiter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vcoresim/memproto"
	"github.com/sarchlab/vcoresim/sim"
)

var _ = Describe("LocalMemDemux", func() {
	var (
		driver *sim.Driver
		demux  *LocalMemDemux
	)

	BeforeEach(func() {
		driver = sim.NewDriver()
		demux = NewLocalMemDemux("D", driver, func(addr uint64) bool {
			return addr >= 0x1000 && addr < 0x2000
		}, 1)
		driver.Register(demux)
	})

	It("should route a shared-address request to the LMEM path and back", func() {
		req := memproto.LsuReqBuilder{}.
			WithMask(1).
			WithAddrs([]uint64{0x1000}).
			WithTag(3).
			Build()
		demux.ReqIn.Inject(req)

		driver.Run(1)

		routed := demux.LMEMReqOut.Pop().(memproto.LsuReq)
		Expect(routed.Tag).To(Equal(uint32((3 << 1) | 1)))

		rsp := memproto.LsuRspBuilder{}.WithTag(routed.GetTag()).Build()
		demux.LMEMRspIn.Inject(rsp)

		driver.Run(1)

		final := demux.RspOut.Pop().(memproto.LsuRsp)
		Expect(final.Tag).To(Equal(uint64(3)))
	})

	It("should route a non-shared request to the cache path", func() {
		req := memproto.LsuReqBuilder{}.
			WithMask(1).
			WithAddrs([]uint64{0x9000}).
			WithTag(9).
			Build()
		demux.ReqIn.Inject(req)

		driver.Run(1)

		routed := demux.CacheReqOut.Pop().(memproto.LsuReq)
		Expect(routed.Tag).To(Equal(uint32(9 << 1)))
	})
})
