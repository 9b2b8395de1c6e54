package model

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// Point is a logical coordinate, relative to a pattern origin when used in a Pattern
type Point struct {
	X, Y int
}

// Pattern is a set of live cells
type Pattern []Point

var patterns = map[string]Pattern{
	// vertical period-2 oscillator
	"blinker": {{0, 0}, {0, 1}, {0, 2}},
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"glider":  {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	// three cells that settle into a block after one generation
	"lshape": {{0, 0}, {1, 0}, {0, 1}},
}

// PatternByName looks up a built-in pattern
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Errorf("[PatternByName] unknown pattern: %q", name)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Seed brings every cell of p to life, shifted by origin
func Seed(b *Board, origin Point, p Pattern) error {
	for _, pt := range p {
		if err := b.SetCellState(origin.X+pt.X, origin.Y+pt.Y, true); err != nil {
			return errors.Wrapf(err, "[Seed] failed to seed (%d,%d)", origin.X+pt.X, origin.Y+pt.Y)
		}
	}
	return nil
}

// Randomize sets each interior cell alive with the given probability using a
// deterministic PCG source
func Randomize(b *Board, density float64, seed int64) error {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := range b.Height() {
		for x := range b.Width() {
			if err := b.SetCellState(x, y, r.Float64() < density); err != nil {
				return errors.Wrap(err, "[Randomize]")
			}
		}
	}
	return nil
}
