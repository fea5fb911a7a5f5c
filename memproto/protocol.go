// Package memproto defines the memory-facing wire types the LSU fabric
// speaks: LsuReq/LsuRsp between the LSU unit and its demux, and MemReq/MemRsp
// between the demux's lanes and the downstream memory subsystem.
package memproto

import "github.com/sarchlab/vcoresim/sim"

// AddrType classifies a memory address into one of the regions a core's
// memory-mapped layout recognizes.
type AddrType int

// Address-region classes.
const (
	Global AddrType = iota
	Shared
	IO
)

func (t AddrType) String() string {
	switch t {
	case Global:
		return "Global"
	case Shared:
		return "Shared"
	case IO:
		return "IO"
	default:
		return "UnknownAddrType"
	}
}

// LsuReq is the request the LSU unit issues to its downstream demux. Mask
// and Addrs are indexed by lane; only lanes set in Mask are meaningful.
type LsuReq struct {
	Mask  uint64
	Addrs []uint64
	Write bool
	Tag   uint32
	CID   uint32
	UUID  uint64
}

// LsuReqBuilder builds an LsuReq with the fluent WithX...Build pattern used
// throughout the reference fabric's message types.
type LsuReqBuilder struct {
	mask  uint64
	addrs []uint64
	write bool
	tag   uint32
	cid   uint32
	uuid  uint64
}

// WithMask sets the active-lane mask.
func (b LsuReqBuilder) WithMask(mask uint64) LsuReqBuilder {
	b.mask = mask
	return b
}

// WithAddrs sets the per-lane addresses.
func (b LsuReqBuilder) WithAddrs(addrs []uint64) LsuReqBuilder {
	b.addrs = addrs
	return b
}

// WithWrite marks the request as a store.
func (b LsuReqBuilder) WithWrite(write bool) LsuReqBuilder {
	b.write = write
	return b
}

// WithTag sets the pending-table tag.
func (b LsuReqBuilder) WithTag(tag uint32) LsuReqBuilder {
	b.tag = tag
	return b
}

// WithCID sets the originating core id.
func (b LsuReqBuilder) WithCID(cid uint32) LsuReqBuilder {
	b.cid = cid
	return b
}

// WithUUID sets the debug uuid, propagated from the originating trace.
func (b LsuReqBuilder) WithUUID(uuid uint64) LsuReqBuilder {
	b.uuid = uuid
	return b
}

// Build constructs the LsuReq.
func (b LsuReqBuilder) Build() LsuReq {
	return LsuReq{
		Mask:  b.mask,
		Addrs: b.addrs,
		Write: b.write,
		Tag:   b.tag,
		CID:   b.cid,
		UUID:  b.uuid,
	}
}

// LsuRsp is a (possibly partial) response to an LsuReq. Mask records which
// lanes of the original request this packet answers.
type LsuRsp struct {
	Mask uint64
	Tag  uint64
	CID  uint32
	UUID uint64
}

// LsuRspBuilder builds an LsuRsp.
type LsuRspBuilder struct {
	mask uint64
	tag  uint64
	cid  uint32
	uuid uint64
}

// WithMask sets the responding-lane mask.
func (b LsuRspBuilder) WithMask(mask uint64) LsuRspBuilder {
	b.mask = mask
	return b
}

// WithTag sets the pending-table tag this response answers.
func (b LsuRspBuilder) WithTag(tag uint64) LsuRspBuilder {
	b.tag = tag
	return b
}

// WithCID sets the originating core id.
func (b LsuRspBuilder) WithCID(cid uint32) LsuRspBuilder {
	b.cid = cid
	return b
}

// WithUUID sets the debug uuid.
func (b LsuRspBuilder) WithUUID(uuid uint64) LsuRspBuilder {
	b.uuid = uuid
	return b
}

// Build constructs the LsuRsp.
func (b LsuRspBuilder) Build() LsuRsp {
	return LsuRsp{Mask: b.mask, Tag: b.tag, CID: b.cid, UUID: b.uuid}
}

// MemReq is a single-lane memory request, the unit the LsuMemAdapter
// explodes an LsuReq into.
type MemReq struct {
	Addr  uint64
	Write bool
	Type  AddrType
	Tag   uint32
	CID   uint32
	UUID  uint64
}

// MemRsp answers a MemReq with the same Tag.
type MemRsp struct {
	Tag  uint64
	CID  uint32
	UUID uint64
}

// Classifier turns an address into its AddrType per the region layout
// enumerated in the specification's configuration constants.
type Classifier struct {
	IOBase, IOEnd     uint64
	LMEMEnabled       bool
	LMEMBase, LMEMEnd uint64
}

// NewClassifier builds a Classifier from the raw base/size configuration.
func NewClassifier(ioBase, ioEnd uint64, lmemEnabled bool, lmemBase uint64, lmemLogSize uint) Classifier {
	return Classifier{
		IOBase:      ioBase,
		IOEnd:       ioEnd,
		LMEMEnabled: lmemEnabled,
		LMEMBase:    lmemBase,
		LMEMEnd:     lmemBase + (uint64(1) << lmemLogSize),
	}
}

// Classify returns the AddrType of addr.
func (c Classifier) Classify(addr uint64) AddrType {
	if addr >= c.IOBase && addr < c.IOEnd {
		return IO
	}

	if c.LMEMEnabled && addr >= c.LMEMBase && addr < c.LMEMEnd {
		return Shared
	}

	return Global
}

// RemotePort is reused from sim rather than redefined so that memproto
// consumers and sim.Port consumers speak the same port type.
type RemotePort = sim.Port

// GetTag and SetTag let the arbiter fabric rewrite tags generically across
// every wire type without knowing their concrete representation.

// FirstAddr returns the address of the lowest active lane in Mask, used by
// the demux fabric to classify a multi-lane request by a single address.
func (r LsuReq) FirstAddr() (uint64, bool) {
	for i := 0; i < len(r.Addrs); i++ {
		if r.Mask&(1<<uint(i)) != 0 {
			return r.Addrs[i], true
		}
	}
	return 0, false
}

// GetTag returns the request's tag.
func (r LsuReq) GetTag() uint64 { return uint64(r.Tag) }

// SetTag returns a copy of the request with its tag replaced.
func (r LsuReq) SetTag(tag uint64) interface{} {
	r.Tag = uint32(tag)
	return r
}

// GetTag returns the response's tag.
func (r LsuRsp) GetTag() uint64 { return r.Tag }

// SetTag returns a copy of the response with its tag replaced.
func (r LsuRsp) SetTag(tag uint64) interface{} {
	r.Tag = tag
	return r
}

// GetTag returns the request's tag.
func (r MemReq) GetTag() uint64 { return uint64(r.Tag) }

// SetTag returns a copy of the request with its tag replaced.
func (r MemReq) SetTag(tag uint64) interface{} {
	r.Tag = uint32(tag)
	return r
}

// GetTag returns the response's tag.
func (r MemRsp) GetTag() uint64 { return r.Tag }

// SetTag returns a copy of the response with its tag replaced.
func (r MemRsp) SetTag(tag uint64) interface{} {
	r.Tag = tag
	return r
}
