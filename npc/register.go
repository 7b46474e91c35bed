package npc

import (
	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

// Register adds the NPC object types to a world codec.
func Register(codec *world.Codec, cfg *config.Config) {
	codec.Register(NPC_TYPE, func(rec persist.Record) (world.Object, error) {
		return decodeNPC(rec, cfg.NpcLifetime)
	})
	codec.Register(FACTORY_TYPE, func(rec persist.Record) (world.Object, error) {
		return decodeFactory(rec, cfg)
	})
	codec.Register(RADIO_TOWER_TYPE, func(rec persist.Record) (world.Object, error) {
		return decodeRadioTower(rec, cfg.RadioMaxMessages, cfg.RadioMessageLength)
	})
}
