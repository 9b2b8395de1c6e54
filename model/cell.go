package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxRelations caps how many neighbours a cell tracks
const MaxRelations = 8

// ErrNoNeighbors is raised when a sentinel cell is asked to flip
var ErrNoNeighbors = errors.New("cell has no registered neighbors")

// Position locates a cell on the padded grid. It is only used for diagnostics;
// cells are addressed by their flat index.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Cell is one slot of a board's arena. Neighbours are held as indices into the
// same arena, so a Cell is only meaningful together with the slice it lives in.
type Cell struct {
	alive     bool
	count     uint8
	n         uint8
	index     int
	neighbors [MaxRelations]int
	pos       Position
}

func newCell(index int, pos Position) Cell {
	return Cell{index: index, pos: pos}
}

// Alive reports whether the cell is currently alive
func (c *Cell) Alive() bool {
	return c.alive
}

// NeighborCount returns the cached number of live neighbours
func (c *Cell) NeighborCount() int {
	return int(c.count)
}

// Position returns the padded coordinates of the cell
func (c *Cell) Position() Position {
	return c.pos
}

// RelationCount returns how many neighbours are registered
func (c *Cell) RelationCount() int {
	return int(c.n)
}

// Neighbors returns a copy of the registered neighbour indices
func (c *Cell) Neighbors() []int {
	out := make([]int, c.n)
	copy(out, c.neighbors[:c.n])
	return out
}

// RegisterNeighbor adds a relation to the cell at idx. Once MaxRelations are
// held further registrations are ignored, as is a relation to the cell itself.
func (c *Cell) RegisterNeighbor(idx int) {
	if c.n >= MaxRelations || idx == c.index {
		return
	}
	c.neighbors[c.n] = idx
	c.n++
}

// born brings the cell to life and pushes +1 to every neighbour in arena.
func (c *Cell) born(arena []Cell) {
	if c.alive {
		return
	}
	c.mustHaveNeighbors("born")
	c.alive = true
	c.notify(arena, true)
}

// kill is the inverse of born.
func (c *Cell) kill(arena []Cell) {
	if !c.alive {
		return
	}
	c.mustHaveNeighbors("kill")
	c.alive = false
	c.notify(arena, false)
}

func (c *Cell) notify(arena []Cell, born bool) {
	for _, idx := range c.neighbors[:c.n] {
		if idx == c.index {
			continue
		}
		nb := &arena[idx]
		// sentinels have no neighbour set, so their count must stay zero
		if nb.n == 0 {
			continue
		}
		if born {
			nb.count++
		} else {
			nb.count--
		}
	}
}

func (c *Cell) mustHaveNeighbors(op string) {
	if c.n == 0 {
		panic(errors.Wrapf(ErrNoNeighbors, "[Cell.%s] cell %s is a sentinel or was never wired", op, c.pos))
	}
}
