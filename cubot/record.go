package cubot

import (
	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/hardware"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

const (
	KEY_ENERGY   = "e"
	KEY_HARDWARE = "hw"
	KEY_MEMORY   = "m"
	KEY_PROGRAM  = "p"
)

func (cubot *Cubot) Marshal() persist.Record {
	rec := cubot.MarshalBase(CUBOT_TYPE)
	rec[KEY_ENERGY] = cubot.energy

	devices := make([]persist.Record, 0, len(cubot.devices))
	for _, dev := range cubot.devices {
		devices = append(devices, dev.Marshal())
	}
	rec[KEY_HARDWARE] = devices
	rec[KEY_MEMORY] = cubot.Memory.Bytes()
	rec[KEY_PROGRAM] = cubot.Source

	return rec
}

// Decode rebuilds a Cubot from its record. The world is bound on the
// Cubot's first Update.
func Decode(rec persist.Record, cfg *config.Config) (cubot *Cubot, err error) {
	base, err := world.UnmarshalBase(rec)
	if err != nil {
		return
	}

	energy, err := rec.Int(KEY_ENERGY)
	if err != nil {
		return
	}

	devices, err := rec.Records(KEY_HARDWARE)
	if err != nil {
		return
	}

	mem, err := rec.Bytes(KEY_MEMORY)
	if err != nil {
		return
	}

	source, _ := rec[KEY_PROGRAM].(string)

	bot := newCubot(nil, base.ObjectID(), base.X(), base.Y(), cfg)
	bot.energy = energy
	bot.Memory.SetBytes(mem)

	lookup := func(id world.ObjectID) (hardware.Host, bool) {
		return bot, id == bot.ObjectID()
	}
	for _, devRec := range devices {
		var dev hardware.Device
		dev, err = hardware.Decode(devRec, lookup, cfg)
		if err != nil {
			return
		}
		bot.Attach(dev)
	}

	if len(source) != 0 {
		err = bot.Assemble(source)
		if err != nil {
			return
		}
	}

	cubot = bot
	return
}

// Register adds the Cubot object type to a world codec.
func Register(codec *world.Codec, cfg *config.Config) {
	codec.Register(CUBOT_TYPE, func(rec persist.Record) (obj world.Object, err error) {
		cubot, err := Decode(rec, cfg)
		if err != nil {
			return
		}
		obj = cubot
		return
	})
}
