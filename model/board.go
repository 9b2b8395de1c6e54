package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/segfo/conways-life-of-game/rules"
)

var (
	// ErrNotWired is returned when a board is mutated before WireNeighbors
	ErrNotWired = errors.New("board neighbors are not wired")
	// ErrOutOfRange is returned by SetCellState on a strict board
	ErrOutOfRange = errors.New("coordinate outside the board")
)

// UpdateMode selects how a generation is evaluated
type UpdateMode uint8

const (
	// UpdateSnapshot captures every interior count before committing any flip
	UpdateSnapshot UpdateMode = iota
	// UpdateScan applies flips in row-major order as it goes, so later cells
	// see the deltas pushed by earlier cells of the same generation
	UpdateScan
)

func (m UpdateMode) String() string {
	switch m {
	case UpdateSnapshot:
		return "snapshot"
	case UpdateScan:
		return "scan"
	}
	return fmt.Sprintf("UpdateMode(%d)", uint8(m))
}

// ParseUpdateMode converts a config value into an UpdateMode
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch s {
	case "", "snapshot":
		return UpdateSnapshot, nil
	case "scan":
		return UpdateScan, nil
	}
	return UpdateSnapshot, errors.Errorf("[ParseUpdateMode] unknown update mode: %q", s)
}

// Option configures a Board
type Option func(*Board)

// WithUpdateMode sets the generation evaluation order
func WithUpdateMode(m UpdateMode) Option {
	return func(b *Board) { b.mode = m }
}

// WithStrictBounds makes SetCellState report out-of-range coordinates
// instead of ignoring them
func WithStrictBounds(strict bool) Option {
	return func(b *Board) { b.strict = strict }
}

// Board owns a padded arena of cells. The logical width x height area is
// framed by a one-cell sentinel border that is never flipped.
type Board struct {
	width  int // padded
	height int // padded
	cells  []Cell
	wired  bool

	mode       UpdateMode
	strict     bool
	generation int

	pending []rules.Transition
}

// NewBoard allocates a dead board of the given logical size. The board is not
// wired; call WireNeighbors before mutating it.
func NewBoard(width, height int, opts ...Option) *Board {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}
	b.allocate(width+2, height+2)
	return b
}

func (b *Board) allocate(pw, ph int) {
	b.width = pw
	b.height = ph
	b.cells = make([]Cell, pw*ph)
	for y := range ph {
		for x := range pw {
			i := y*pw + x
			b.cells[i] = newCell(i, Position{X: x, Y: y})
		}
	}
	b.wired = false
	b.generation = 0
	b.pending = nil
}

// WireNeighbors registers the eight surrounding cells of every interior cell.
// Calling it again has no effect.
func (b *Board) WireNeighbors() {
	if b.wired {
		return
	}
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			c := &b.cells[b.index(x, y)]
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					c.RegisterNeighbor(b.index(x+dx, y+dy))
				}
			}
		}
	}
	b.wired = true
}

// IsWired reports whether WireNeighbors has run
func (b *Board) IsWired() bool {
	return b.wired
}

// Width returns the logical width
func (b *Board) Width() int {
	return b.width - 2
}

// Height returns the logical height
func (b *Board) Height() int {
	return b.height - 2
}

// PaddedSize returns the dimensions including the sentinel border
func (b *Board) PaddedSize() (int, int) {
	return b.width, b.height
}

// Mode returns the update mode
func (b *Board) Mode() UpdateMode {
	return b.mode
}

// Generation returns how many generations have been advanced
func (b *Board) Generation() int {
	return b.generation
}

func (b *Board) index(px, py int) int {
	return py*b.width + px
}

func (b *Board) interior(px, py int) bool {
	return px >= 1 && px < b.width-1 && py >= 1 && py < b.height-1
}

// SetCellState sets the cell at logical (x, y). Coordinates outside the
// logical area are ignored, or rejected with ErrOutOfRange on a strict board.
func (b *Board) SetCellState(x, y int, alive bool) error {
	if !b.wired {
		return errors.Wrapf(ErrNotWired, "[SetCellState] (%d,%d)", x, y)
	}
	px, py := x+1, y+1
	if !b.interior(px, py) {
		if b.strict {
			return errors.Wrapf(ErrOutOfRange, "[SetCellState] (%d,%d) on %dx%d board", x, y, b.Width(), b.Height())
		}
		return nil
	}
	c := &b.cells[b.index(px, py)]
	if alive {
		c.born(b.cells)
	} else {
		c.kill(b.cells)
	}
	return nil
}

// Alive reports the state of the cell at logical (x, y); false out of range
func (b *Board) Alive(x, y int) bool {
	px, py := x+1, y+1
	if !b.interior(px, py) {
		return false
	}
	return b.cells[b.index(px, py)].alive
}

// NeighborCount returns the cached count at logical (x, y); 0 out of range
func (b *Board) NeighborCount(x, y int) int {
	px, py := x+1, y+1
	if !b.interior(px, py) {
		return 0
	}
	return int(b.cells[b.index(px, py)].count)
}

// CellAt returns a copy of the cell at padded (px, py), border included
func (b *Board) CellAt(px, py int) (Cell, bool) {
	if px < 0 || px >= b.width || py < 0 || py >= b.height {
		return Cell{}, false
	}
	return b.cells[b.index(px, py)], true
}

// AdvanceGeneration applies the birth/death rule to every interior cell.
func (b *Board) AdvanceGeneration() error {
	if !b.wired {
		return errors.Wrap(ErrNotWired, "[AdvanceGeneration]")
	}

	var err error
	switch b.mode {
	case UpdateScan:
		err = b.advanceScan()
	default:
		err = b.advanceSnapshot()
	}
	if err != nil {
		return err
	}

	b.generation++
	return nil
}

func (b *Board) transition(i int) (rules.Transition, error) {
	c := &b.cells[i]
	t, err := rules.Next(int(c.count))
	if err != nil {
		return t, errors.Wrapf(err, "[AdvanceGeneration] cell %s generation %d", c.pos, b.generation)
	}
	return t, nil
}

func (b *Board) apply(i int, t rules.Transition) {
	switch t {
	case rules.Kill:
		b.cells[i].kill(b.cells)
	case rules.Born:
		b.cells[i].born(b.cells)
	}
}

func (b *Board) advanceScan() error {
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			i := b.index(x, y)
			t, err := b.transition(i)
			if err != nil {
				return err
			}
			b.apply(i, t)
		}
	}
	return nil
}

// advanceSnapshot validates and records every transition first, so a corrupt
// count leaves the board untouched.
func (b *Board) advanceSnapshot() error {
	n := b.Width() * b.Height()
	if cap(b.pending) < n {
		b.pending = make([]rules.Transition, n)
	}
	b.pending = b.pending[:n]

	k := 0
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			t, err := b.transition(b.index(x, y))
			if err != nil {
				return err
			}
			b.pending[k] = t
			k++
		}
	}

	k = 0
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			b.apply(b.index(x, y), b.pending[k])
			k++
		}
	}
	return nil
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return b.CloneInto(nil)
}

// CloneInto copies the board's state into dst, reallocating dst when the
// sizes differ, and returns it. Relations are arena indices, so the copy is
// wired against its own cells.
func (b *Board) CloneInto(dst *Board) *Board {
	if dst == nil {
		dst = &Board{}
	}
	if len(dst.cells) != len(b.cells) {
		dst.cells = make([]Cell, len(b.cells))
	}
	copy(dst.cells, b.cells)
	dst.width = b.width
	dst.height = b.height
	dst.wired = b.wired
	dst.mode = b.mode
	dst.strict = b.strict
	dst.generation = b.generation
	dst.pending = nil
	return dst
}

// Equals reports whether both boards have the same size and the same alive
// cells. Neighbour counts are not compared.
func (b *Board) Equals(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i].alive != other.cells[i].alive {
			return false
		}
	}
	return true
}

// LiveCount returns the number of living cells
func (b *Board) LiveCount() (count int) {
	for i := range b.cells {
		if b.cells[i].alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the alive state
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i := range b.cells {
		if b.cells[i].alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Reset kills every cell and zeroes the generation, keeping the wiring
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i].alive = false
		b.cells[i].count = 0
	}
	b.generation = 0
}
