package sim

import (
	"log"
	"sort"
)

// HookPosPortPush marks when an item is pushed into a port.
var HookPosPortPush = &HookPos{Name: "Port Push"}

// HookPosPortPop marks when an item is popped from a port.
var HookPosPortPop = &HookPos{Name: "Port Pop"}

// Clock exposes the current cycle of whatever driver owns a port. Ports only
// ever read Now(), they never advance it.
type Clock interface {
	Now() uint64
}

// A Port is a typed FIFO with a time-ordered pushback discipline: Push makes
// an item visible at the port's head only once the clock reaches the cycle
// it was pushed at plus its delay. Ports belong to exactly one SimObject.
type Port interface {
	Named
	Hookable

	// Push schedules item to become visible at the port's head at the
	// current cycle plus delay. delay must be at least 1.
	Push(item interface{}, delay uint64)

	// Inject places item at the head of the port, visible at the current
	// cycle. It exists for the front-end/test-harness boundary, which is
	// not itself a Ticker bound by the delay>=1 contract that governs
	// SimObject-to-SimObject pushes.
	Inject(item interface{})

	// Front returns the item at the head of the port, or nil if the port
	// is empty or the head item is not yet visible.
	Front() interface{}

	// Pop removes and returns the item returned by Front, or nil.
	Pop() interface{}

	// Empty reports whether Front would return nil.
	Empty() bool

	// Bind short-circuits this port directly into dst: every future Push
	// to this port is delivered to dst instead, honoring the same delay.
	// A port can only be bound once.
	Bind(dst Port)
}

type portEntry struct {
	readyAt uint64
	seq     uint64
	item    interface{}
}

type defaultPort struct {
	HookableBase

	name    string
	clock   Clock
	entries []portEntry
	nextSeq uint64
	boundTo Port
}

// NewPort creates a Port ticked against the given clock.
func NewPort(name string, clock Clock) Port {
	NameMustBeValid(name)

	if clock == nil {
		log.Panic("port requires a clock")
	}

	return &defaultPort{name: name, clock: clock}
}

func (p *defaultPort) Name() string {
	return p.name
}

func (p *defaultPort) Push(item interface{}, delay uint64) {
	if delay == 0 {
		log.Panicf("port %s: push delay must be at least 1", p.name)
	}

	if p.boundTo != nil {
		p.boundTo.Push(item, delay)
		return
	}

	e := portEntry{
		readyAt: p.clock.Now() + delay,
		seq:     p.nextSeq,
		item:    item,
	}
	p.nextSeq++

	idx := sort.Search(len(p.entries), func(i int) bool {
		if p.entries[i].readyAt != e.readyAt {
			return p.entries[i].readyAt > e.readyAt
		}
		return p.entries[i].seq > e.seq
	})
	p.entries = append(p.entries, portEntry{})
	copy(p.entries[idx+1:], p.entries[idx:])
	p.entries[idx] = e

	if p.NumHooks() > 0 {
		p.InvokeHook(HookCtx{Domain: p, Pos: HookPosPortPush, Item: item})
	}
}

func (p *defaultPort) Inject(item interface{}) {
	if p.boundTo != nil {
		p.boundTo.Inject(item)
		return
	}

	e := portEntry{
		readyAt: p.clock.Now(),
		seq:     p.nextSeq,
		item:    item,
	}
	p.nextSeq++

	idx := sort.Search(len(p.entries), func(i int) bool {
		if p.entries[i].readyAt != e.readyAt {
			return p.entries[i].readyAt > e.readyAt
		}
		return p.entries[i].seq > e.seq
	})
	p.entries = append(p.entries, portEntry{})
	copy(p.entries[idx+1:], p.entries[idx:])
	p.entries[idx] = e

	if p.NumHooks() > 0 {
		p.InvokeHook(HookCtx{Domain: p, Pos: HookPosPortPush, Item: item})
	}
}

func (p *defaultPort) Front() interface{} {
	if p.boundTo != nil {
		log.Panicf("port %s: cannot read from a bound source port", p.name)
	}

	if len(p.entries) == 0 {
		return nil
	}

	head := p.entries[0]
	if head.readyAt > p.clock.Now() {
		return nil
	}

	return head.item
}

func (p *defaultPort) Pop() interface{} {
	item := p.Front()
	if item == nil {
		return nil
	}

	p.entries = p.entries[1:]

	if p.NumHooks() > 0 {
		p.InvokeHook(HookCtx{Domain: p, Pos: HookPosPortPop, Item: item})
	}

	return item
}

func (p *defaultPort) Empty() bool {
	return p.Front() == nil
}

func (p *defaultPort) Bind(dst Port) {
	if p.boundTo != nil {
		log.Panicf("port %s: already bound", p.name)
	}

	if dst == nil {
		log.Panicf("port %s: cannot bind to a nil port", p.name)
	}

	p.boundTo = dst
}
