package model

// DefaultHistoryDepth is how many past states History remembers by default
const DefaultHistoryDepth = 5

// History stores recent board hashes for cycle detection
type History struct {
	depth  int
	hashes []string
}

func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record compares hash against the remembered states and then remembers it.
// It returns the period of the repeat (1 for a still life, 2 for a blinker),
// or 0 when hash has not been seen within the window.
func (h *History) Record(hash string) (period int) {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last depth states
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return period
}

// Len returns the number of remembered states
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every state
func (h *History) Reset() {
	h.hashes = nil
}
