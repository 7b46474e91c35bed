package hardware

import (
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

// testHost is a minimal device host placed in a world.
type testHost struct {
	world.Base
	w         *world.World
	energy    int
	maxEnergy int
}

var _ Host = (*testHost)(nil)

func newTestHost(w *world.World, x, y int, energy int) *testHost {
	host := &testHost{
		Base:      world.NewBase(w.NextObjectID(), x, y),
		w:         w,
		energy:    energy,
		maxEnergy: 4000,
	}
	if err := w.AddObject(host); err != nil {
		panic(err)
	}
	return host
}

func (host *testHost) World() *world.World {
	return host.w
}

func (host *testHost) Energy() int {
	return host.energy
}

func (host *testHost) MaxEnergy() int {
	return host.maxEnergy
}

func (host *testHost) SpendEnergy(amount int) bool {
	if host.energy < amount {
		return false
	}
	host.energy -= amount
	return true
}

func (host *testHost) MapInfo() uint16 {
	return 0x0080
}

func (host *testHost) Marshal() persist.Record {
	return host.MarshalBase(1)
}

// testTower is a radio tower that delivers immediately.
type testTower struct {
	world.Base
	messages [][]uint16
	limit    int
}

var _ Tower = (*testTower)(nil)

func (tower *testTower) MapInfo() uint16 {
	return 0x1000
}

func (tower *testTower) Marshal() persist.Record {
	return tower.MarshalBase(4)
}

func (tower *testTower) SendMessage(msg []uint16) bool {
	if len(tower.messages) >= tower.limit {
		return false
	}
	tower.messages = append(tower.messages, msg)
	return true
}

func (tower *testTower) Messages() [][]uint16 {
	return tower.messages
}

// interrupt runs a device interrupt with the given registers.
func interrupt(cp *cpu.Cpu, dev Device, regs map[string]int) {
	cp.Attach(dev.Address(), dev)
	for name, value := range regs {
		cp.Registers.SetInt(name, value)
	}
	cp.Interrupt(dev.Address())
}

// fill sets count words from addr to value.
func fill(mem *cpu.Memory, addr int, count int, value uint16) {
	for n := range count {
		mem.Set(addr+n, value)
	}
}

func words(mem *cpu.Memory, addr int, count int) []uint16 {
	list, err := mem.Words(addr, count)
	if err != nil {
		panic(err)
	}
	return list
}
