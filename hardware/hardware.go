// Package hardware implements the Cubot peripherals that programs reach
// through the HWI instruction.
//
// Every device dispatches on register A. Devices that cost energy take it
// from their host before doing any work, and silently do nothing when the
// host cannot afford it.
package hardware

import (
	"errors"
	"iter"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/translate"
	"github.com/ezrec/cubot/world"
)

var f = translate.From

var (
	ErrHwidUnknown = errors.New(f("hardware id unknown"))
	ErrHostMissing = errors.New(f("hardware host missing"))
)

// Host is the entity a device senses and acts for.
type Host interface {
	ObjectID() world.ObjectID
	X() int
	Y() int
	World() *world.World
	Energy() int
	MaxEnergy() int
	SpendEnergy(amount int) bool // Deducts amount if affordable.
}

// Device is a peripheral bound to a host.
type Device interface {
	cpu.Hardware
	Address() uint16 // Default bus address.
	Defines() iter.Seq2[string, string]
	Marshal() persist.Record
}

// Lookup resolves a host by object id.
type Lookup func(id world.ObjectID) (Host, bool)

type decoder func(rec persist.Record, host Host, cfg *config.Config) (Device, error)

// decoders is the table of device types, by hardware id.
var decoders = map[cpu.HWID]decoder{
	LIDAR_HWID:   decodeLidar,
	BATTERY_HWID: decodeBattery,
	RADIO_HWID:   decodeRadio,
}

// marshalDevice returns the common device record.
func marshalDevice(hwid cpu.HWID, host Host) persist.Record {
	return persist.Record{
		persist.KEY_HWID: int(hwid),
		"cubot":          int64(host.ObjectID()),
	}
}

// Decode rebuilds a device from its record, bound to the host named by the
// record's "cubot" field.
func Decode(rec persist.Record, lookup Lookup, cfg *config.Config) (dev Device, err error) {
	hwid, err := rec.Int(persist.KEY_HWID)
	if err != nil {
		return
	}

	decode, ok := decoders[cpu.HWID(hwid)]
	if !ok {
		err = ErrHwidUnknown
		return
	}

	id, err := rec.Int64("cubot")
	if err != nil {
		return
	}

	host, ok := lookup(world.ObjectID(id))
	if !ok {
		err = ErrHostMissing
		return
	}

	return decode(rec, host, cfg)
}

// NewDevices returns the standard device set for a host.
func NewDevices(host Host, cfg *config.Config) []Device {
	return []Device{
		NewBattery(host),
		NewLidar(host),
		NewRadio(host, cfg.RadioRange, cfg.RadioMessageLength),
	}
}

// setWords writes words to memory from addr. Words past the end of memory
// are dropped.
func setWords(mem *cpu.Memory, addr int, words ...uint16) {
	_ = mem.Load(addr, words)
}
