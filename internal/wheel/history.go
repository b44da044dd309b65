package wheel

// History keeps the most recent spin results in a fixed-size ring.
type History struct {
	buffer    []string
	nextIndex int
	count     int
}

// NewHistory returns a ring holding up to size results.
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{buffer: make([]string, size)}
}

// Record appends a result, overwriting the oldest one when full.
func (h *History) Record(label string) {
	h.buffer[h.nextIndex] = label
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.count < len(h.buffer) {
		h.count++
	}
}

// Len returns the number of recorded results.
func (h *History) Len() int { return h.count }

// Snapshot returns the recorded results, oldest first.
func (h *History) Snapshot() []string {
	out := make([]string, 0, h.count)
	// Walk backwards from nextIndex - 1
	idx := h.nextIndex - 1
	for i := 0; i < h.count; i++ {
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
		out = append(out, h.buffer[idx])
		idx--
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
