package npc

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/cubot/config"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

const (
	FACTORY_TYPE     = 3
	FACTORY_MAP_INFO = uint16(0x0200)

	KEY_NPCS     = "n"
	KEY_COOLDOWN = "c"
)

// factoryRing is the spawn search order around the 2x2 footprint,
// clockwise from the tile east of the top-right corner.
var factoryRing = [8][2]int{
	{2, 0}, {2, 1},
	{1, 2}, {0, 2},
	{-1, 1}, {-1, 0},
	{0, -1}, {1, -1},
}

// roster is the set of NPCs a factory owns.
type roster interface {
	ids() []world.ObjectID
}

// pendingRoster holds NPC ids not yet resolved to live NPCs.
type pendingRoster []world.ObjectID

func (r pendingRoster) ids() []world.ObjectID {
	return r
}

// liveRoster holds the linked NPCs.
type liveRoster []*NPC

func (r liveRoster) ids() (list []world.ObjectID) {
	list = make([]world.ObjectID, 0, len(r))
	for _, npc := range r {
		list = append(list, npc.ObjectID())
	}
	return
}

// Factory builds NPCs on the tiles around it, one every cooldown period,
// up to a maximum count. A factory covers 2x2 tiles from its position.
//
// A factory starts out with a pending roster of NPC ids. Its first Update
// links those NPCs and does nothing else; every later Update runs the
// spawn cycle.
type Factory struct {
	world.Base
	MaxNpcs  int // Most NPCs alive at once.
	Period   int // Ticks between spawn attempts.
	Lifetime int // Lifetime of spawned NPCs.

	cooldown int
	roster   roster
}

var _ world.Updatable = (*Factory)(nil)

// NewFactory creates a factory with no NPCs.
func NewFactory(id world.ObjectID, x, y int, cfg *config.Config) *Factory {
	return &Factory{
		Base:     world.NewBase(id, x, y),
		MaxNpcs:  cfg.FactoryMaxNpcCount,
		Period:   cfg.NpcCreationCooldown(),
		Lifetime: cfg.NpcLifetime,
		roster:   pendingRoster{},
	}
}

func (factory *Factory) MapInfo() uint16 {
	return FACTORY_MAP_INFO
}

func (factory *Factory) IsAt(x, y int) bool {
	return (x == factory.X() || x == factory.X()+1) &&
		(y == factory.Y() || y == factory.Y()+1)
}

// Linked is true once the factory's roster holds live NPCs.
func (factory *Factory) Linked() bool {
	_, ok := factory.roster.(liveRoster)
	return ok
}

// Cooldown is the number of ticks until the next spawn attempt.
func (factory *Factory) Cooldown() int {
	return factory.cooldown
}

// NPCs returns the linked NPCs, or nil if not yet linked.
func (factory *Factory) NPCs() []*NPC {
	npcs, _ := factory.roster.(liveRoster)
	return slices.Clone(npcs)
}

// NpcIDs returns the ids of the factory's NPCs, linked or not.
func (factory *Factory) NpcIDs() []world.ObjectID {
	return factory.roster.ids()
}

func (factory *Factory) Update(w *world.World) {
	switch r := factory.roster.(type) {
	case pendingRoster:
		factory.link(w, r)
	case liveRoster:
		factory.spawn(w, r)
	}
}

// link resolves the pending ids to NPCs. Ids that no longer name an NPC
// are dropped.
func (factory *Factory) link(w *world.World, pending pendingRoster) {
	live := make(liveRoster, 0, len(pending))
	for _, id := range pending {
		obj, ok := w.Object(id)
		if !ok {
			logrus.WithField("factory", factory.ObjectID()).Debugf("factory: npc %d is gone", id)
			continue
		}
		npc, ok := obj.(*NPC)
		if !ok {
			logrus.WithField("factory", factory.ObjectID()).Debugf("factory: object %d is not an npc", id)
			continue
		}
		npc.factory = factory
		live = append(live, npc)
	}
	factory.roster = live
}

func (factory *Factory) spawn(w *world.World, live liveRoster) {
	if factory.cooldown != 0 {
		factory.cooldown--
		return
	}

	factory.cooldown += factory.Period

	if len(live) >= factory.MaxNpcs {
		return
	}

	x, y, ok := factory.adjacentTile(w)
	if !ok {
		return
	}

	npc := NewNPC(w.NextObjectID(), x, y, factory.Lifetime)
	if err := w.AddObject(npc); err != nil {
		logrus.WithField("factory", factory.ObjectID()).Warnf("factory: %v", err)
		return
	}
	npc.factory = factory
	factory.roster = append(live, npc)

	logrus.WithField("factory", factory.ObjectID()).Debugf("factory: npc %d at (%d,%d)", npc.ObjectID(), x, y)
}

// adjacentTile finds the first free tile of the spawn ring.
func (factory *Factory) adjacentTile(w *world.World) (x, y int, ok bool) {
	for _, delta := range factoryRing {
		x, y = factory.X()+delta[0], factory.Y()+delta[1]
		if !w.IsTileBlocked(x, y) {
			ok = true
			return
		}
	}
	return
}

// release drops an NPC from the roster.
func (factory *Factory) release(npc *NPC) {
	live, ok := factory.roster.(liveRoster)
	if !ok {
		return
	}
	factory.roster = slices.DeleteFunc(live, func(other *NPC) bool {
		return other == npc
	})
}

func (factory *Factory) Marshal() persist.Record {
	rec := factory.MarshalBase(FACTORY_TYPE)
	ids := factory.roster.ids()
	list := make([]int64, 0, len(ids))
	for _, id := range ids {
		list = append(list, int64(id))
	}
	rec[KEY_NPCS] = list
	rec[KEY_COOLDOWN] = factory.cooldown
	return rec
}

func decodeFactory(rec persist.Record, cfg *config.Config) (obj world.Object, err error) {
	base, err := world.UnmarshalBase(rec)
	if err != nil {
		return
	}

	list, err := rec.Int64s(KEY_NPCS)
	if err != nil {
		return
	}

	factory := NewFactory(base.ObjectID(), base.X(), base.Y(), cfg)

	pending := make(pendingRoster, 0, len(list))
	for _, id := range list {
		pending = append(pending, world.ObjectID(id))
	}
	factory.roster = pending

	if _, ok := rec[KEY_COOLDOWN]; ok {
		factory.cooldown, err = rec.Int(KEY_COOLDOWN)
		if err != nil {
			return
		}
		if factory.cooldown < 0 {
			err = &persist.ErrField{Key: KEY_COOLDOWN, Err: persist.ErrFieldType}
			return
		}
	}

	obj = factory
	return
}
