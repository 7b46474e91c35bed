package cubot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cubot/hardware"
	"github.com/ezrec/cubot/npc"
	"github.com/ezrec/cubot/persist"
	"github.com/ezrec/cubot/world"
)

func TestCubotRecord(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig()
	codec := world.NewCodec()
	Register(codec, cfg)
	npc.Register(codec, cfg)

	w := world.NewWorld(8, 0, 0)
	cubot := newTestCubot(t, w, 1, 1,
		"MOV A, LIDAR_GET_PATH",
		"MOV B, 10",
		"MOV X, 4",
		"MOV Y, 1",
		"HWI LIDAR",
		"BRK",
	)
	tower := npc.NewRadioTower(w.NextObjectID(), 6, 6, cfg.RadioMaxMessages, cfg.RadioMessageLength)
	assert.NoError(w.AddObject(tower))

	world.NewScheduler(w).Tick()
	assert.Equal(150, cubot.Energy())

	data, err := codec.Save(w)
	assert.NoError(err)

	loaded, err := codec.Load(data)
	assert.NoError(err)
	if !assert.NotNil(loaded) {
		return
	}

	obj, ok := loaded.Object(cubot.ObjectID())
	assert.True(ok)
	bot, ok := obj.(*Cubot)
	if !assert.True(ok) {
		return
	}

	assert.Equal(150, bot.Energy())
	assert.Equal(200, bot.MaxEnergy())
	assert.Equal(cubot.Source, bot.Source)
	assert.Equal(cubot.Program, bot.Program)
	assert.Equal(cubot.Memory.Bytes(), bot.Memory.Bytes())
	assert.Equal(cubot.Addresses(), bot.Addresses())
	for n, dev := range bot.Devices() {
		assert.Equal(cubot.Devices()[n].ID(), dev.ID())
		assert.Equal(cubot.Devices()[n].Marshal(), dev.Marshal())
	}
	lidar, ok := bot.Devices()[1].(*hardware.Lidar)
	if assert.True(ok) {
		assert.Equal(bot, lidar.Host())
	}

	world.NewScheduler(loaded).Tick()
	assert.NoError(bot.LastError)
	assert.Equal(loaded, bot.World())
	assert.Equal(100, bot.Energy())
	assert.Equal(150, cubot.Energy())
}

func TestCubotRecordErrors(t *testing.T) {
	assert := assert.New(t)

	cfg := testConfig()
	w := world.NewWorld(8, 0, 0)
	cubot := NewCubot(w, 1, 1, cfg)

	table := [](struct {
		name   string
		mangle func(rec persist.Record)
		err    error
	}){
		{"energy", func(rec persist.Record) { delete(rec, KEY_ENERGY) }, persist.ErrFieldMissing},
		{"memory", func(rec persist.Record) { rec[KEY_MEMORY] = 7 }, persist.ErrFieldType},
		{"device", func(rec persist.Record) {
			rec[KEY_HARDWARE] = []persist.Record{{persist.KEY_HWID: 0x99, "cubot": 1}}
		}, hardware.ErrHwidUnknown},
		{"device_host", func(rec persist.Record) {
			rec[KEY_HARDWARE] = []persist.Record{{persist.KEY_HWID: int(hardware.LIDAR_HWID), "cubot": 7}}
		}, hardware.ErrHostMissing},
	}

	for _, entry := range table {
		rec := cubot.Marshal()
		entry.mangle(rec)
		bot, err := Decode(rec, cfg)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(bot, entry.name)
	}

	// A program without source loads without one.
	rec := cubot.Marshal()
	delete(rec, KEY_PROGRAM)
	bot, err := Decode(rec, cfg)
	assert.NoError(err)
	assert.Empty(bot.Source)
}
