package hardware

import (
	"iter"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/cpu"
	"github.com/ezrec/cubot/internal"
	"github.com/ezrec/cubot/persist"
)

const (
	BATTERY_HWID    = cpu.HWID(0x0000)
	BATTERY_ADDRESS = uint16(0x000A)

	BATTERY_POLL    = 1
	BATTERY_GET_MAX = 2
)

var _battery_defines = map[string]int{
	"HWID_BATTERY":    int(BATTERY_HWID),
	"BATTERY":         int(BATTERY_ADDRESS),
	"BATTERY_POLL":    BATTERY_POLL,
	"BATTERY_GET_MAX": BATTERY_GET_MAX,
}

// Battery reports the host's energy store in register B.
type Battery struct {
	host Host
}

var _ Device = (*Battery)(nil)

func NewBattery(host Host) *Battery {
	return &Battery{host: host}
}

func (bat *Battery) ID() cpu.HWID {
	return BATTERY_HWID
}

func (bat *Battery) Address() uint16 {
	return BATTERY_ADDRESS
}

func (bat *Battery) Defines() iter.Seq2[string, string] {
	return internal.Defines(_battery_defines)
}

func (bat *Battery) HandleInterrupt(cp *cpu.Cpu, status cpu.Status) {
	switch cp.Registers.Get("A") {
	case BATTERY_POLL:
		cp.Registers.SetInt("B", bat.host.Energy())
	case BATTERY_GET_MAX:
		cp.Registers.SetInt("B", bat.host.MaxEnergy())
	}
}

func (bat *Battery) Marshal() persist.Record {
	return marshalDevice(BATTERY_HWID, bat.host)
}

func decodeBattery(rec persist.Record, host Host, cfg *config.Config) (Device, error) {
	return NewBattery(host), nil
}
