// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package cubot implements the programmable robot: a CPU, its devices, and
// an energy store, living in a world.
package cubot

import (
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/hardware"
	"github.com/ezrec/cubot/internal"
	"github.com/ezrec/cubot/npc"
	"github.com/ezrec/cubot/world"
)

const (
	CUBOT_TYPE     = 1
	CUBOT_MAP_INFO = uint16(0x0080)
)

// Map info bits, for programs that read the world map.
var _cubot_defines = map[string]int{
	"MAP_WALL":        int(world.TILE_WALL),
	"MAP_CUBOT":       int(CUBOT_MAP_INFO),
	"MAP_NPC":         int(npc.NPC_MAP_INFO),
	"MAP_FACTORY":     int(npc.FACTORY_MAP_INFO),
	"MAP_RADIO_TOWER": int(npc.RADIO_TOWER_MAP_INFO),
}

// Cubot state. CPU + devices + energy.
type Cubot struct {
	world.Base
	*cpu.Cpu // Reference to the CPU simulation.

	Source              string // Program source text.
	InstructionsPerTick int    // Instruction budget of one Update.
	LastError           error  // Fault of the most recent Update, if any.

	energy    int
	maxEnergy int
	world     *world.World
	devices   []hardware.Device
}

var (
	_ world.Updatable = (*Cubot)(nil)
	_ hardware.Host   = (*Cubot)(nil)
)

// NewCubot creates a fully charged Cubot with the standard devices.
func NewCubot(w *world.World, x, y int, cfg *config.Config) (cubot *Cubot) {
	cubot = newCubot(w, w.NextObjectID(), x, y, cfg)
	cubot.energy = cubot.maxEnergy

	for _, dev := range hardware.NewDevices(cubot, cfg) {
		cubot.Attach(dev)
	}

	return
}

func newCubot(w *world.World, id world.ObjectID, x, y int, cfg *config.Config) *Cubot {
	return &Cubot{
		Base:                world.NewBase(id, x, y),
		Cpu:                 cpu.NewCpu(cfg.CubotMemorySize),
		InstructionsPerTick: cfg.CpuInstructionsPerTick,
		maxEnergy:           cfg.CubotMaxEnergy,
		world:               w,
	}
}

// Attach maps a device on its default bus address.
func (cubot *Cubot) Attach(dev hardware.Device) {
	cubot.devices = append(cubot.devices, dev)
	cubot.Cpu.Attach(dev.Address(), dev)
}

// Devices returns the attached devices, in attach order.
func (cubot *Cubot) Devices() []hardware.Device {
	return cubot.devices
}

// Defines returns an iterator over all of the defines
func (cubot *Cubot) Defines() iter.Seq2[string, string] {
	seqs := []iter.Seq2[string, string]{internal.Defines(_cubot_defines)}
	for _, dev := range cubot.devices {
		seqs = append(seqs, dev.Defines())
	}
	return internal.IterSeq2Concat(seqs...)
}

// Assemble compiles a program, with the device defines, and loads it.
func (cubot *Cubot) Assemble(source string) (err error) {
	asm := &cpu.Assembler{}
	for name, value := range cubot.Defines() {
		asm.Predefine(name, value)
	}

	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	cubot.Source = source
	cubot.Program = prog
	return
}

func (cubot *Cubot) MapInfo() uint16 {
	return CUBOT_MAP_INFO
}

func (cubot *Cubot) World() *world.World {
	return cubot.world
}

func (cubot *Cubot) Energy() int {
	return cubot.energy
}

func (cubot *Cubot) MaxEnergy() int {
	return cubot.maxEnergy
}

// SpendEnergy takes amount from the energy store, if there is enough.
func (cubot *Cubot) SpendEnergy(amount int) bool {
	if cubot.energy < amount {
		return false
	}
	cubot.energy -= amount
	return true
}

// LineNo returns the source line of the instruction at the IP.
func (cubot *Cubot) LineNo() int {
	in, ok := cubot.Program.At(cubot.Ip)
	if !ok {
		return 0
	}
	return in.LineNo
}

// Update runs the program from the top, for up to InstructionsPerTick
// instructions. Memory is kept from tick to tick.
func (cubot *Cubot) Update(w *world.World) {
	cubot.world = w
	cubot.LastError = nil

	cubot.Reset()
	executed, err := cubot.Run(cubot.InstructionsPerTick)
	if err != nil {
		cubot.LastError = &ErrRuntime{Cubot: cubot.ObjectID(), LineNo: cubot.LineNo(), Err: err}
		logrus.WithField("cubot", cubot.ObjectID()).Warn(cubot.LastError)
	}

	logrus.WithField("cubot", cubot.ObjectID()).Debugf("cubot: %d instructions, %d energy", executed, cubot.energy)
}
