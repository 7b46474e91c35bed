// Package npc implements the non-player world objects: factories, the
// NPCs they build, and radio towers.
package npc

import (
	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

const (
	NPC_TYPE     = 10
	NPC_MAP_INFO = uint16(0x0040)

	KEY_AGE = "a"
)

// NPC is a factory-built object with a fixed lifetime. It removes itself
// from the world, and from its factory, when its lifetime is spent.
type NPC struct {
	world.Base
	Age      int
	Lifetime int

	factory *Factory
}

var _ world.Updatable = (*NPC)(nil)

// NewNPC creates an NPC.
func NewNPC(id world.ObjectID, x, y int, lifetime int) *NPC {
	return &NPC{
		Base:     world.NewBase(id, x, y),
		Lifetime: lifetime,
	}
}

// Factory returns the factory the NPC belongs to, if linked.
func (npc *NPC) Factory() *Factory {
	return npc.factory
}

func (npc *NPC) MapInfo() uint16 {
	return NPC_MAP_INFO
}

func (npc *NPC) Update(w *world.World) {
	npc.Age++
	if npc.Age < npc.Lifetime {
		return
	}

	logrus.WithField("npc", npc.ObjectID()).Debugf("npc: end of life at age %d", npc.Age)

	w.RemoveObject(npc.ObjectID())
	if npc.factory != nil {
		npc.factory.release(npc)
		npc.factory = nil
	}
}

func (npc *NPC) Marshal() persist.Record {
	rec := npc.MarshalBase(NPC_TYPE)
	rec[KEY_AGE] = npc.Age
	return rec
}

func decodeNPC(rec persist.Record, lifetime int) (obj world.Object, err error) {
	base, err := world.UnmarshalBase(rec)
	if err != nil {
		return
	}

	age, err := rec.Int(KEY_AGE)
	if err != nil {
		return
	}

	obj = &NPC{Base: base, Age: age, Lifetime: lifetime}
	return
}
