package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/cubot/persist"
)

func TestCodecRoundTrip(t *testing.T) {
	assert := assert.New(t)

	codec := NewCodec()
	codec.Register(TEST_TYPE, decodeProbe)
	assert.Equal([]int{TEST_TYPE}, codec.Types())

	w := NewWorld(4, -4, 8)
	w.SetTile(3, 3, TILE_WALL)
	a := newProbe(w, 1, 2, nil)
	a.updates = 7
	assert.NoError(w.AddObject(a))
	assert.NoError(w.AddObject(newProbe(w, 2, 2, nil)))
	w.NextObjectID() // burn an id

	data, err := codec.Save(w)
	assert.NoError(err)

	back, err := codec.Load(data)
	assert.NoError(err)
	if !assert.NotNil(back) {
		return
	}

	assert.Equal(4, back.WorldSize())
	assert.Equal(-4, back.X())
	assert.Equal(8, back.Y())
	assert.Equal(TILE_WALL, back.Tile(3, 3))
	assert.Equal(2, back.ObjectCount())

	obj, ok := back.Object(a.ObjectID())
	if assert.True(ok) {
		assert.Equal(1, obj.X())
		assert.Equal(2, obj.Y())
		assert.Equal(7, obj.(*probe).updates)
	}

	assert.Equal(ObjectID(4), back.NextObjectID())
}

func TestCodecBadRecord(t *testing.T) {
	assert := assert.New(t)

	codec := NewCodec()
	codec.Register(TEST_TYPE, decodeProbe)

	w := NewWorld(4, 0, 0)
	assert.NoError(w.AddObject(newProbe(w, 0, 0, nil)))
	assert.NoError(w.AddObject(&broken{Base: NewBase(w.NextObjectID(), 1, 1)}))
	assert.NoError(w.AddObject(&unknown{Base: NewBase(w.NextObjectID(), 2, 2)}))
	assert.NoError(w.AddObject(newProbe(w, 3, 3, nil)))

	data, err := codec.Save(w)
	assert.NoError(err)

	// Only the bad objects are lost.
	back, err := codec.Load(data)
	assert.Error(err)
	assert.ErrorIs(err, persist.ErrFieldMissing)
	assert.ErrorIs(err, ErrTypeUnknown)
	if assert.NotNil(back) {
		assert.Equal(2, back.ObjectCount())
		_, ok := back.Object(1)
		assert.True(ok)
		_, ok = back.Object(4)
		assert.True(ok)
	}
}

func TestCodecBadDocument(t *testing.T) {
	assert := assert.New(t)

	codec := NewCodec()

	w, err := codec.Load([]byte("{not json"))
	assert.Error(err)
	assert.Nil(w)

	table := []string{
		`{"size": 2, "tiles": [0, 0, 0]}`,
		`{"size": 0, "tiles": []}`,
		`{"size": -1, "tiles": [0]}`,
		`{"size": 4294967296, "tiles": [], "objects": []}`,
		`{"size": 2, "tiles": [0, 0], "objects": []}`,
	}

	for _, doc := range table {
		w, err = codec.Load([]byte(doc))
		assert.ErrorIs(err, ErrWorldSize, doc)
		assert.Nil(w, doc)
	}
}

// broken saves a probe record without its "u" field.
type broken struct {
	Base
}

func (b *broken) MapInfo() uint16 { return 0 }

func (b *broken) Marshal() persist.Record {
	return b.MarshalBase(TEST_TYPE)
}

// unknown saves a record with an unregistered type.
type unknown struct {
	Base
}

func (u *unknown) MapInfo() uint16 { return 0 }

func (u *unknown) Marshal() persist.Record {
	return u.MarshalBase(TEST_TYPE + 1)
}
