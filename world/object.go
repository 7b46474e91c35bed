package world

import (
	"github.com/ezrec/cubot/persist"
)

// ObjectID identifies a game object. Ids are never reused within a world.
type ObjectID int64

// Object is anything that occupies the world.
type Object interface {
	ObjectID() ObjectID
	X() int
	Y() int
	IsAt(x, y int) bool // True if the object covers the tile.
	MapInfo() uint16    // Bits reported on the world map.
	Marshal() persist.Record
}

// Updatable objects take part in the tick scheduler.
type Updatable interface {
	Object
	Update(w *World)
}

// Base carries the identity and position shared by all objects.
// It covers a single tile.
type Base struct {
	id ObjectID
	x  int
	y  int
}

// NewBase creates a base at a position.
func NewBase(id ObjectID, x, y int) Base {
	return Base{id: id, x: x, y: y}
}

func (b *Base) ObjectID() ObjectID {
	return b.id
}

func (b *Base) SetObjectID(id ObjectID) {
	b.id = id
}

func (b *Base) X() int {
	return b.x
}

func (b *Base) Y() int {
	return b.y
}

// SetPosition moves the object.
func (b *Base) SetPosition(x, y int) {
	b.x = x
	b.y = y
}

func (b *Base) IsAt(x, y int) bool {
	return b.x == x && b.y == y
}

// MarshalBase returns the common record fields for a type tag.
func (b *Base) MarshalBase(tag int) persist.Record {
	return persist.Record{
		persist.KEY_ID:   int64(b.id),
		persist.KEY_X:    b.x,
		persist.KEY_Y:    b.y,
		persist.KEY_TYPE: tag,
	}
}

// UnmarshalBase reads the common record fields.
func UnmarshalBase(rec persist.Record) (b Base, err error) {
	id, err := rec.Int64(persist.KEY_ID)
	if err != nil {
		return
	}
	x, err := rec.Int(persist.KEY_X)
	if err != nil {
		return
	}
	y, err := rec.Int(persist.KEY_Y)
	if err != nil {
		return
	}

	b = NewBase(ObjectID(id), x, y)
	return
}
