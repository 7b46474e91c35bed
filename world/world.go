// Package world holds the tile grid Cubots and NPCs live on, the registry
// of live objects, and the tick scheduler that drives them.
//
// A World is the explicit context handed to every device and entity: there
// is no process-wide registry. During a tick the scheduler is the only
// writer; object additions and removals are visible to every later reader
// in the same tick.
package world

import (
	"errors"
	"iter"
	"slices"

	"github.com/ezrec/cubot/translate"
)

var f = translate.From

// Tile types.
const (
	TILE_PLAIN = uint16(0)
	TILE_WALL  = uint16(1)
)

var (
	ErrObjectExists = errors.New(f("object id already in use"))
	ErrWorldSize    = errors.New(f("world size invalid"))
)

// World is a square tile grid plus the objects on it.
type World struct {
	size  int
	x, y  int      // World-space offset of the grid origin.
	tiles []uint16 // Column-major, index x*size + y.

	objects []Object // In insertion order.
	byID    map[ObjectID]Object
	nextID  ObjectID
}

// NewWorld creates an empty world of size x size plain tiles, with its
// origin at (x, y) in world space.
func NewWorld(size int, x, y int) *World {
	return &World{
		size:   size,
		x:      x,
		y:      y,
		tiles:  make([]uint16, size*size),
		byID:   make(map[ObjectID]Object),
		nextID: 1,
	}
}

// WorldSize is the length of a side of the grid.
func (w *World) WorldSize() int {
	return w.size
}

// X is the world-space x offset of the grid.
func (w *World) X() int {
	return w.x
}

// Y is the world-space y offset of the grid.
func (w *World) Y() int {
	return w.y
}

// InBounds returns true if the tile is on the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.size && y < w.size
}

// Tile returns the tile type, or TILE_WALL off the grid.
func (w *World) Tile(x, y int) uint16 {
	if !w.InBounds(x, y) {
		return TILE_WALL
	}
	return w.tiles[x*w.size+y]
}

// SetTile sets the tile type. Off-grid tiles are ignored.
func (w *World) SetTile(x, y int, tile uint16) {
	if !w.InBounds(x, y) {
		return
	}
	w.tiles[x*w.size+y] = tile
}

// IsTileBlocked returns true if the tile is off the grid, a wall, or
// covered by an object.
func (w *World) IsTileBlocked(x, y int) bool {
	if w.Tile(x, y) == TILE_WALL {
		return true
	}

	for _, obj := range w.objects {
		if obj.IsAt(x, y) {
			return true
		}
	}

	return false
}

// MapInfo returns the map snapshot, indexed [x][y]: the tile type with the
// map info bits of each object at that position or'd in.
func (w *World) MapInfo() (info [][]uint16) {
	info = make([][]uint16, w.size)
	for x := range w.size {
		info[x] = slices.Clone(w.tiles[x*w.size : (x+1)*w.size])
	}

	for _, obj := range w.objects {
		if w.InBounds(obj.X(), obj.Y()) {
			info[obj.X()][obj.Y()] |= obj.MapInfo()
		}
	}

	return
}

// NextObjectID allocates a new object id.
func (w *World) NextObjectID() (id ObjectID) {
	id = w.nextID
	w.nextID++
	return
}

// AddObject registers an object. The id counter is moved past the
// object's id so allocated ids never collide with loaded ones.
func (w *World) AddObject(obj Object) (err error) {
	id := obj.ObjectID()
	if _, ok := w.byID[id]; ok {
		err = ErrObjectExists
		return
	}

	w.objects = append(w.objects, obj)
	w.byID[id] = obj
	if id >= w.nextID {
		w.nextID = id + 1
	}

	return
}

// RemoveObject unregisters an object by id.
func (w *World) RemoveObject(id ObjectID) (ok bool) {
	if _, ok = w.byID[id]; !ok {
		return
	}

	delete(w.byID, id)
	w.objects = slices.DeleteFunc(w.objects, func(obj Object) bool {
		return obj.ObjectID() == id
	})

	return
}

// Object looks up a live object by id.
func (w *World) Object(id ObjectID) (obj Object, ok bool) {
	obj, ok = w.byID[id]
	return
}

// Objects iterates the live objects in insertion order.
func (w *World) Objects() iter.Seq[Object] {
	return slices.Values(slices.Clone(w.objects))
}

// ObjectCount is the number of live objects.
func (w *World) ObjectCount() int {
	return len(w.objects)
}

// Updatables returns the updatable objects in insertion order.
func (w *World) Updatables() (list []Updatable) {
	for _, obj := range w.objects {
		if up, ok := obj.(Updatable); ok {
			list = append(list, up)
		}
	}
	return
}
