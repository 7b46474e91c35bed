package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cubot/world"
)

func TestRadioTowerDelay(t *testing.T) {
	assert := assert.New(t)

	w := world.NewWorld(8, 0, 0)
	tower := NewRadioTower(w.NextObjectID(), 3, 3, 2, 4)
	assert.NoError(w.AddObject(tower))
	s := world.NewScheduler(w)

	msg := []uint16{1, 2, 3}
	assert.True(tower.SendMessage(msg))
	msg[0] = 0x99
	assert.Empty(tower.Messages())

	s.Tick()
	assert.Equal([][]uint16{{1, 2, 3}}, tower.Messages())

	assert.True(tower.SendMessage([]uint16{4}))
	assert.Equal([][]uint16{{1, 2, 3}}, tower.Messages())

	s.Tick()
	assert.Equal([][]uint16{{4}}, tower.Messages())

	s.Tick()
	assert.Empty(tower.Messages())
}

func TestRadioTowerReject(t *testing.T) {
	assert := assert.New(t)

	tower := NewRadioTower(1, 0, 0, 2, 4)

	assert.False(tower.SendMessage([]uint16{1, 2, 3, 4, 5}))
	assert.True(tower.SendMessage([]uint16{1, 2, 3, 4}))
	assert.True(tower.SendMessage(nil))
	assert.False(tower.SendMessage([]uint16{1}))

	tower.Update(nil)
	assert.Len(tower.Messages(), 2)
	assert.True(tower.SendMessage([]uint16{1}))
}

func TestNpcRecords(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig(4, 400)
	codec := world.NewCodec()
	Register(codec, cfg)
	assert.Equal([]int{FACTORY_TYPE, RADIO_TOWER_TYPE, NPC_TYPE}, codec.Types())

	w := world.NewWorld(8, 1, 2)
	tower := NewRadioTower(w.NextObjectID(), 6, 6, cfg.RadioMaxMessages, cfg.RadioMessageLength)
	assert.NoError(w.AddObject(tower))
	npc := NewNPC(w.NextObjectID(), 1, 1, cfg.NpcLifetime)
	npc.Age = 17
	assert.NoError(w.AddObject(npc))

	tower.SendMessage([]uint16{1})

	data, err := codec.Save(w)
	assert.NoError(err)
	loaded, err := codec.Load(data)
	assert.NoError(err)

	obj, ok := loaded.Object(tower.ObjectID())
	assert.True(ok)
	assert.Equal(&RadioTower{
		Base:          world.NewBase(tower.ObjectID(), 6, 6),
		MaxMessages:   16,
		MessageLength: 8,
	}, obj)

	obj, ok = loaded.Object(npc.ObjectID())
	assert.True(ok)
	assert.Equal(&NPC{
		Base:     world.NewBase(npc.ObjectID(), 1, 1),
		Age:      17,
		Lifetime: 400,
	}, obj)
}
