// Package pathfinding finds 4-directional routes across a tile grid.
package pathfinding

import (
	"container/heap"
)

// Direction codes, as written by the Lidar into Cubot memory.
const (
	DIR_NORTH = uint16(0)
	DIR_EAST  = uint16(1)
	DIR_SOUTH = uint16(2)
	DIR_WEST  = uint16(3)
)

// Grid answers blocked-tile queries. Tiles outside of the grid must
// report as blocked.
type Grid interface {
	IsTileBlocked(x, y int) bool
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Node is a tile on a discovered route, linked to the tile before it.
type Node struct {
	X, Y   int
	Parent *Node

	cost int // Steps from the origin.
}

// Path is a route from origin to destination, both included.
type Path []*Node

// Steps is the number of moves along the path.
func (path Path) Steps() int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// Directions encodes each move as a direction code.
func (path Path) Directions() (dirs []uint16) {
	dirs = make([]uint16, 0, path.Steps())
	for n := 1; n < len(path); n++ {
		prev, node := path[n-1], path[n]
		switch {
		case node.X < prev.X:
			dirs = append(dirs, DIR_WEST)
		case node.X > prev.X:
			dirs = append(dirs, DIR_EAST)
		case node.Y < prev.Y:
			dirs = append(dirs, DIR_NORTH)
		case node.Y > prev.Y:
			dirs = append(dirs, DIR_SOUTH)
		}
	}
	return
}

// neighbours in expansion order: north, east, south, west.
var neighbours = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// FindPath searches for a shortest route from one tile to another that
// takes at most maxSteps moves.
//
// The search is A* with a Manhattan distance heuristic. Ties are broken by
// the heuristic and then by discovery order, and neighbours are always
// expanded north, east, south, west, so identical queries return identical
// routes. Tiles that cannot lie on a route within the budget are never
// expanded, which bounds the work by the budget rather than the grid.
//
// ok is false when the destination is blocked, unreachable, or further
// than maxSteps away.
func FindPath(grid Grid, from, to Point, maxSteps int) (path Path, ok bool) {
	if maxSteps < 0 {
		return
	}

	if from == to {
		path = Path{&Node{X: from.X, Y: from.Y}}
		ok = true
		return
	}

	if grid.IsTileBlocked(to.X, to.Y) || manhattan(from, to) > maxSteps {
		return
	}

	open := &openSet{}
	best := map[Point]int{from: 0}
	closed := map[Point]bool{}

	heap.Push(open, &entry{node: &Node{X: from.X, Y: from.Y}, h: manhattan(from, to)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*entry).node
		here := Point{current.X, current.Y}

		if closed[here] {
			continue
		}
		closed[here] = true

		if here == to {
			ok = true
			path = make(Path, current.cost+1)
			for node := current; node != nil; node = node.Parent {
				path[node.cost] = node
			}
			return
		}

		cost := current.cost + 1
		for _, delta := range neighbours {
			next := Point{here.X + delta.X, here.Y + delta.Y}
			if closed[next] {
				continue
			}
			h := manhattan(next, to)
			if cost+h > maxSteps {
				continue
			}
			if prior, seen := best[next]; seen && prior <= cost {
				continue
			}
			if grid.IsTileBlocked(next.X, next.Y) {
				continue
			}
			best[next] = cost
			heap.Push(open, &entry{
				node: &Node{X: next.X, Y: next.Y, Parent: current, cost: cost},
				h:    h,
			})
		}
	}

	return
}

// entry is an open set item.
type entry struct {
	node *Node
	h    int
	seq  int
}

// openSet is a priority queue ordered by f = cost + h, then h, then
// discovery order.
type openSet struct {
	entries []*entry
	seq     int
}

// Len implements heap.Interface
func (set *openSet) Len() int {
	return len(set.entries)
}

// Less implements heap.Interface
func (set *openSet) Less(i, j int) bool {
	ei, ej := set.entries[i], set.entries[j]

	fi, fj := ei.node.cost+ei.h, ej.node.cost+ej.h
	if fi != fj {
		return fi < fj
	}

	if ei.h != ej.h {
		return ei.h < ej.h
	}

	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (set *openSet) Swap(i, j int) {
	set.entries[i], set.entries[j] = set.entries[j], set.entries[i]
}

// Push implements heap.Interface
func (set *openSet) Push(x any) {
	e := x.(*entry)
	e.seq = set.seq
	set.seq++
	set.entries = append(set.entries, e)
}

// Pop implements heap.Interface
func (set *openSet) Pop() any {
	old := set.entries
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	set.entries = old[:n-1]
	return item
}
