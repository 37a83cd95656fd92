package model

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// NewHistory returns an empty history
func NewHistory() *History {
	return &History{hashes: make([]string, 0, historySize+1)}
}

// Observe records g and reports whether it repeats one of the last three
// generations: a still life or an oscillator with period up to 3.
func (h *History) Observe(g *Grid) (stagnant bool, period int) {
	current := g.GetGridHash()

	for p := 1; p <= 3 && p <= len(h.hashes); p++ {
		if h.hashes[len(h.hashes)-p] == current {
			stagnant, period = true, p
			break
		}
	}

	h.hashes = append(h.hashes, current)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
	return
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}
