package hardware

import (
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/internal"
	"github.com/ezrec/cubot/pathfinding"
	"github.com/ezrec/cubot/persist"
)

const (
	LIDAR_HWID    = cpu.HWID(0x0003)
	LIDAR_ADDRESS = uint16(3)

	LIDAR_GET_POS        = 1
	LIDAR_GET_PATH       = 2
	LIDAR_GET_MAP        = 3
	LIDAR_GET_WORLD_POS  = 4
	LIDAR_GET_WORLD_SIZE = 5

	LIDAR_PATH_COST = 50 // Energy for GET_PATH.
	LIDAR_MAP_COST  = 10 // Energy for GET_MAP.

	LIDAR_PATH_START = 0x0000 // Memory address of GET_PATH results.
	LIDAR_PATH_END   = 0xAAAA // Written after the last step of a path.
	LIDAR_PATH_NONE  = 0xFFFF // Written when there is no path.
)

var _lidar_defines = map[string]int{
	"HWID_LIDAR":           int(LIDAR_HWID),
	"LIDAR":                int(LIDAR_ADDRESS),
	"LIDAR_GET_POS":        LIDAR_GET_POS,
	"LIDAR_GET_PATH":       LIDAR_GET_PATH,
	"LIDAR_GET_MAP":        LIDAR_GET_MAP,
	"LIDAR_GET_WORLD_POS":  LIDAR_GET_WORLD_POS,
	"LIDAR_GET_WORLD_SIZE": LIDAR_GET_WORLD_SIZE,
	"LIDAR_PATH_START":     LIDAR_PATH_START,
	"LIDAR_PATH_END":       LIDAR_PATH_END,
	"LIDAR_PATH_NONE":      LIDAR_PATH_NONE,
}

// Lidar senses the host's surroundings: its position, routes to other
// tiles, and the world map.
//
// Register A selects the operation:
//
//	1 GET_POS         X, Y = host position
//	2 GET_PATH        route from the host to (X, Y) in at most B steps,
//	                  written at LIDAR_PATH_START (50 energy)
//	3 GET_MAP         world map written at address X (10 energy)
//	4 GET_WORLD_POS   X, Y = world origin
//	5 GET_WORLD_SIZE  X, Y = world size
type Lidar struct {
	host Host
}

var _ Device = (*Lidar)(nil)

// NewLidar creates a Lidar for a host.
func NewLidar(host Host) *Lidar {
	return &Lidar{host: host}
}

func (lidar *Lidar) ID() cpu.HWID {
	return LIDAR_HWID
}

func (lidar *Lidar) Address() uint16 {
	return LIDAR_ADDRESS
}

// Host returns the entity the Lidar senses for.
func (lidar *Lidar) Host() Host {
	return lidar.host
}

func (lidar *Lidar) Defines() iter.Seq2[string, string] {
	return internal.Defines(_lidar_defines)
}

func (lidar *Lidar) HandleInterrupt(cp *cpu.Cpu, status cpu.Status) {
	regs := cp.Registers
	host := lidar.host

	switch regs.Get("A") {
	case LIDAR_GET_POS:
		regs.SetInt("X", host.X())
		regs.SetInt("Y", host.Y())
	case LIDAR_GET_PATH:
		if !host.SpendEnergy(LIDAR_PATH_COST) {
			return
		}
		lidar.getPath(cp)
	case LIDAR_GET_MAP:
		if !host.SpendEnergy(LIDAR_MAP_COST) {
			return
		}
		lidar.getMap(cp)
	case LIDAR_GET_WORLD_POS:
		regs.SetInt("X", host.World().X())
		regs.SetInt("Y", host.World().Y())
	case LIDAR_GET_WORLD_SIZE:
		regs.SetInt("X", host.World().WorldSize())
		regs.SetInt("Y", host.World().WorldSize())
	}
}

// getPath writes the route to (X, Y) as direction codes, terminated by
// LIDAR_PATH_END, or LIDAR_PATH_NONE if there is no route within B steps.
func (lidar *Lidar) getPath(cp *cpu.Cpu) {
	regs := cp.Registers
	host := lidar.host

	steps := int(regs.Get("B"))
	dest := pathfinding.Point{X: int(int16(regs.Get("X"))), Y: int(int16(regs.Get("Y")))}
	from := pathfinding.Point{X: host.X(), Y: host.Y()}

	path, ok := pathfinding.FindPath(host.World(), from, dest, steps)

	logrus.WithField("cubot", host.ObjectID()).Debugf("lidar: path from %v to %v in %d: %v", from, dest, steps, ok)

	if !ok {
		setWords(cp.Memory, LIDAR_PATH_START, LIDAR_PATH_NONE)
		return
	}

	words := append(path.Directions(), LIDAR_PATH_END)
	setWords(cp.Memory, LIDAR_PATH_START, words...)
}

// getMap writes the world map starting at address X, x outer and y inner.
func (lidar *Lidar) getMap(cp *cpu.Cpu) {
	info := lidar.host.World().MapInfo()

	addr := int(cp.Registers.Get("X"))
	for _, column := range info {
		setWords(cp.Memory, addr, column...)
		addr += len(column)
	}

	logrus.WithField("cubot", lidar.host.ObjectID()).Debugf("lidar: map at %#x", cp.Registers.Get("X"))
}

func (lidar *Lidar) Marshal() persist.Record {
	return marshalDevice(LIDAR_HWID, lidar.host)
}

func decodeLidar(rec persist.Record, host Host, cfg *config.Config) (Device, error) {
	return NewLidar(host), nil
}
