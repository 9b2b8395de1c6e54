package rules

import "github.com/pkg/errors"

// MaxNeighbors is the size of a full Moore neighbourhood
const MaxNeighbors = 8

// ErrCountOutOfRange signals a cached neighbour count that no valid board can hold
var ErrCountOutOfRange = errors.New("neighbor count out of range")

// Transition is what a cell does in the next generation
type Transition uint8

const (
	// Kill dies of under- or over-population
	Kill Transition = iota
	// Keep leaves the cell as it is
	Keep
	// Born brings the cell to life, or sustains it
	Born
)

func (t Transition) String() string {
	switch t {
	case Kill:
		return "kill"
	case Keep:
		return "keep"
	case Born:
		return "born"
	}
	return "unknown"
}

/*
Next maps a live-neighbour count to the B3/S23 transition.

	0,1     -> Kill (underpopulation)
	2       -> Keep
	3       -> Born (birth, or survival when already alive)
	4..8    -> Kill (overpopulation)
*/
func Next(count int) (Transition, error) {
	switch {
	case count == 2:
		return Keep, nil
	case count == 3:
		return Born, nil
	case count >= 0 && count <= MaxNeighbors:
		return Kill, nil
	}
	return Kill, errors.Wrapf(ErrCountOutOfRange, "[Next] count: %d", count)
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
